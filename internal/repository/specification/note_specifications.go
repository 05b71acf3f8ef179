package specification

import (
	"notetaking-web/internal/entity"

	"gorm.io/gorm"
)

// NoteOwnedByUser scopes a note query to its owner. Every note query carries one.
type NoteOwnedByUser struct {
	UserID uint
}

func (s NoteOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.user_id = ?", s.UserID)
}

type ByNoteStatus struct {
	Status entity.NoteStatus
}

func (s ByNoteStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.status = ?", string(s.Status))
}

func ActiveNotes() Specification {
	return ByNoteStatus{Status: entity.NoteStatusActive}
}

func TrashedNotes() Specification {
	return ByNoteStatus{Status: entity.NoteStatusDeleted}
}
