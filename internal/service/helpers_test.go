package service

import (
	"context"
	"testing"
	"time"

	"notetaking-web/internal/dto"
	"notetaking-web/internal/entity"
	"notetaking-web/internal/pkg/logger"
	"notetaking-web/internal/repository/contract"
	"notetaking-web/internal/repository/memory"
	"notetaking-web/internal/repository/unitofwork"
	"notetaking-web/internal/testutil"
	"notetaking-web/pkg/markdown"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	sessions contract.SessionRepository
	auth     IAuthService
	notes    INoteService
	users    IUserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	sessions := memory.NewSessionRepository(time.Hour, time.Minute)
	log := logger.NewNopLogger()

	return &fixture{
		db:       db,
		sessions: sessions,
		auth: NewAuthService(factory, sessions, AuthOptions{
			MinPasswordLength: 6,
			BcryptCost:        bcrypt.MinCost,
			SessionTTL:        time.Hour,
		}, log),
		notes: NewNoteService(factory, markdown.NewRenderer(), log),
		users: NewUserService(factory, log),
	}
}

func (f *fixture) register(t *testing.T, name, email string) *entity.User {
	t.Helper()
	user, err := f.auth.Register(context.Background(), &dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) createNote(t *testing.T, userId uint, title, content string) *dto.NoteResponse {
	t.Helper()
	note, err := f.notes.Create(context.Background(), userId, &dto.NoteRequest{Title: title, Content: content})
	require.NoError(t, err)
	return note
}
