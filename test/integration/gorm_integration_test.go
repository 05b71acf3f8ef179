package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"notetaking-web/internal/entity"
	"notetaking-web/internal/repository/specification"
	"notetaking-web/internal/repository/unitofwork"
	"notetaking-web/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against the Postgres database in DB_CONNECTION_STRING. Skipped when unset.
func TestGormPostgres(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" || os.Getenv("DB_DRIVER") == "sqlite" {
		t.Skip("Skipping integration test: Postgres DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "connect to DB")
	require.NoError(t, database.AutoMigrate(gormDB))

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(ctx)

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	user := &entity.User{
		Email:        "integration-" + uuid.NewString() + "@example.com",
		PasswordHash: "not-a-real-hash",
		Name:         "Integration Test User",
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	t.Run("Batch status update is scoped to owner and status", func(t *testing.T) {
		var ids []uint
		for _, title := range []string{"one", "two"} {
			note := &entity.Note{Title: title, Content: "x", Status: entity.NoteStatusActive, UserId: user.Id}
			require.NoError(t, uow.NoteRepository().Create(ctx, note))
			ids = append(ids, note.Id)
		}

		rows, err := uow.NoteRepository().UpdateStatus(ctx, entity.NoteStatusDeleted,
			specification.ByIDs{IDs: ids},
			specification.NoteOwnedByUser{UserID: user.Id},
			specification.ActiveNotes(),
		)
		require.NoError(t, err)
		assert.Equal(t, int64(2), rows)
	})

	t.Run("Deleting the user cascades to notes", func(t *testing.T) {
		rows, err := uow.UserRepository().Delete(ctx, user.Id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		count, err := uow.NoteRepository().Count(ctx, specification.NoteOwnedByUser{UserID: user.Id})
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
