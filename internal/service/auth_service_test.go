package service

import (
	"context"
	"testing"

	"notetaking-web/internal/dto"
	"notetaking-web/internal/pkg/apperror"
	"notetaking-web/internal/repository/specification"
	"notetaking-web/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_RegisterNormalizesEmail(t *testing.T) {
	f := newFixture(t)

	user := f.register(t, "  Ana  ", "  Ana@Test.com ")

	assert.NotZero(t, user.Id)
	assert.Equal(t, "ana@test.com", user.Email)
	assert.Equal(t, "Ana", user.Name)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestAuthService_RegisterRejectsDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ana", "ana@test.com")

	_, err := f.auth.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Other Ana",
		Email:    "ANA@test.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrDuplicateEmail)

	count, err := unitofwork.NewUnitOfWork(f.db).UserRepository().Count(context.Background(), specification.ByEmail{Email: "ana@test.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		req   dto.RegisterRequest
		field string
	}{
		{"missing name", dto.RegisterRequest{Name: "   ", Email: "a@b.com", Password: "secret123"}, "name"},
		{"bad email", dto.RegisterRequest{Name: "A", Email: "not-an-email", Password: "secret123"}, "email"},
		{"short password", dto.RegisterRequest{Name: "A", Email: "a@b.com", Password: "12345"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := f.auth.Register(context.Background(), &req)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.ErrorIs(t, err, apperror.ErrValidation)
			assert.Equal(t, tt.field, appErr.Field)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	f := newFixture(t)
	registered := f.register(t, "Ana", "Ana@Test.com")

	user, err := f.auth.Authenticate(context.Background(), &dto.LoginRequest{Email: "ana@test.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.Id, user.Id)

	_, err = f.auth.Authenticate(context.Background(), &dto.LoginRequest{Email: "ana@test.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	assert.ErrorIs(t, err, apperror.ErrWrongPassword)
	wrongPasswordMsg := apperror.Message(err, "")

	_, err = f.auth.Authenticate(context.Background(), &dto.LoginRequest{Email: "nobody@test.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	assert.ErrorIs(t, err, apperror.ErrUserNotFound)

	assert.Equal(t, wrongPasswordMsg, apperror.Message(err, ""), "both failures read the same")
}

func TestAuthService_AuthenticateUnknownEmailStillHashes(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ana", "ana@test.com")

	svc := f.auth.(*authService)
	cost, err := bcrypt.Cost(svc.dummyHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	var compared [][]byte
	svc.compare = func(hash, password []byte) error {
		compared = append(compared, hash)
		return bcrypt.CompareHashAndPassword(hash, password)
	}

	_, err = f.auth.Authenticate(context.Background(), &dto.LoginRequest{Email: "nobody@test.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperror.ErrUserNotFound)
	_, err = f.auth.Authenticate(context.Background(), &dto.LoginRequest{Email: "ana@test.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperror.ErrWrongPassword)

	require.Len(t, compared, 2)
	assert.Equal(t, svc.dummyHash, compared[0])
}

func TestAuthService_AuthenticateValidation(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ana", "ana@test.com")

	tests := []struct {
		name  string
		req   dto.LoginRequest
		field string
	}{
		{"missing email", dto.LoginRequest{Email: "  ", Password: "secret123"}, "email"},
		{"missing password", dto.LoginRequest{Email: "ana@test.com"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := f.auth.Authenticate(context.Background(), &req)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.ErrorIs(t, err, apperror.ErrValidation)
			assert.Equal(t, tt.field, appErr.Field)
		})
	}
}

func TestAuthService_SessionRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "Ana", "ana@test.com")

	token, err := f.auth.Serialize(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := f.auth.Deserialize(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.Id, resolved.Id)

	require.NoError(t, f.auth.Logout(ctx, token))
	_, err = f.auth.Deserialize(ctx, token)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestAuthService_DeserializeFailsClosed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Deserialize(ctx, "")
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	_, err = f.auth.Deserialize(ctx, "never-issued")
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	user := f.register(t, "Ana", "ana@test.com")
	token, err := f.auth.Serialize(ctx, user)
	require.NoError(t, err)
	require.NoError(t, f.users.DeleteAccount(ctx, user.Id))

	_, err = f.auth.Deserialize(ctx, token)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	_, found, err := f.sessions.Get(ctx, token)
	require.NoError(t, err)
	assert.False(t, found, "session of a deleted user is purged")
}
