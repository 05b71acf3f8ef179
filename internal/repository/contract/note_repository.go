package contract

import (
	"context"

	"notetaking-web/internal/entity"
	"notetaking-web/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	// FindAll returns matching notes, most recently updated first.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// UpdateStatus sets status on every matching row in a single statement.
	UpdateStatus(ctx context.Context, status entity.NoteStatus, specs ...specification.Specification) (int64, error)
	// DeleteWhere permanently removes every matching row in a single statement.
	DeleteWhere(ctx context.Context, specs ...specification.Specification) (int64, error)
}
