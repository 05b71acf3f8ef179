package service

import (
	"context"
	"strings"
	"testing"

	"notetaking-web/internal/dto"
	"notetaking-web/internal/model"
	"notetaking-web/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "Ana", "ana@test.com")

	profile, err := f.users.UpdateProfile(ctx, user.Id, &dto.UpdateProfileRequest{Name: " Ana Maria ", Pronoun: " she/her "})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", profile.Name)
	assert.Equal(t, "she/her", profile.Pronoun)
	assert.Equal(t, "ana@test.com", profile.Email)

	profile, err = f.users.UpdateProfile(ctx, user.Id, &dto.UpdateProfileRequest{Name: "Ana", Pronoun: ""})
	require.NoError(t, err)
	assert.Empty(t, profile.Pronoun)

	reloaded, err := f.users.GetProfile(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", reloaded.Name)
	assert.Empty(t, reloaded.Pronoun)

	// Email and password are untouched by profile edits.
	_, err = f.auth.Authenticate(ctx, &dto.LoginRequest{Email: "ana@test.com", Password: "secret123"})
	assert.NoError(t, err)
}

func TestUserService_UpdateProfileValidation(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "Ana", "ana@test.com")

	tests := []struct {
		name  string
		req   dto.UpdateProfileRequest
		field string
	}{
		{"blank name", dto.UpdateProfileRequest{Name: "  "}, "name"},
		{"long name", dto.UpdateProfileRequest{Name: strings.Repeat("n", 101)}, "name"},
		{"long pronoun", dto.UpdateProfileRequest{Name: "Ana", Pronoun: strings.Repeat("p", 51)}, "pronoun"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := f.users.UpdateProfile(context.Background(), user.Id, &req)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.field, appErr.Field)
		})
	}
}

func TestUserService_DeleteAccountCascadesNotes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@test.com")
	bob := f.register(t, "Bob", "bob@test.com")

	f.createNote(t, ana.Id, "one", "x")
	trashed := f.createNote(t, ana.Id, "two", "x")
	require.NoError(t, f.notes.SoftDelete(ctx, ana.Id, trashed.Id))
	f.createNote(t, bob.Id, "bob's", "x")

	require.NoError(t, f.users.DeleteAccount(ctx, ana.Id))

	var remaining int64
	require.NoError(t, f.db.Model(&model.Note{}).Where("user_id = ?", ana.Id).Count(&remaining).Error)
	assert.Zero(t, remaining)

	require.NoError(t, f.db.Model(&model.Note{}).Where("user_id = ?", bob.Id).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	_, err := f.users.GetProfile(ctx, ana.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, f.users.DeleteAccount(ctx, ana.Id), apperror.ErrNotFound)

	_, err = f.auth.Authenticate(ctx, &dto.LoginRequest{Email: "ana@test.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}
