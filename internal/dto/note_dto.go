package dto

import (
	"html/template"
	"time"
)

const NoteTitleMaxLength = 255

// NoteRequest is shared by the create and edit forms.
type NoteRequest struct {
	Title   string `json:"title" form:"title" validate:"required,max=255"`
	Content string `json:"content" form:"content" validate:"required"`
}

type NoteResponse struct {
	Id        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ShowNoteResponse struct {
	NoteResponse
	// RenderedContent is the Markdown body converted to sanitized HTML.
	RenderedContent template.HTML `json:"rendered_content"`
}

type ExportNoteResponse struct {
	Filename string
	Body     string
}

type NoteCountsResponse struct {
	Active  int64 `json:"active"`
	Trashed int64 `json:"trashed"`
}
