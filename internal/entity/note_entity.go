package entity

import "time"

type NoteStatus string

const (
	NoteStatusActive  NoteStatus = "active"
	NoteStatusDeleted NoteStatus = "deleted"
)

type Note struct {
	Id        uint
	Title     string
	Content   string
	Status    NoteStatus
	UserId    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}
