package service

import (
	"context"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"notetaking-web/internal/dto"
	"notetaking-web/internal/entity"
	"notetaking-web/internal/pkg/apperror"
	"notetaking-web/internal/pkg/logger"
	"notetaking-web/internal/pkg/serverutils"
	"notetaking-web/internal/repository/specification"
	"notetaking-web/internal/repository/unitofwork"
)

const noteModule = "note"

type INoteService interface {
	Create(ctx context.Context, userId uint, req *dto.NoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, userId uint, id uint) (*dto.ShowNoteResponse, error)
	// Edit loads an active note for the edit form.
	Edit(ctx context.Context, userId uint, id uint) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uint, id uint, req *dto.NoteRequest) (*dto.NoteResponse, error)
	SoftDelete(ctx context.Context, userId uint, id uint) error
	Restore(ctx context.Context, userId uint, id uint) error
	HardDelete(ctx context.Context, userId uint, id uint) error
	BatchSoftDelete(ctx context.Context, userId uint, rawIds []string) (int64, error)
	Export(ctx context.Context, userId uint, id uint) (*dto.ExportNoteResponse, error)
	ListActive(ctx context.Context, userId uint) ([]*dto.NoteResponse, error)
	ListTrash(ctx context.Context, userId uint) ([]*dto.NoteResponse, error)
	ClearTrash(ctx context.Context, userId uint) (int64, error)
	Counts(ctx context.Context, userId uint) (*dto.NoteCountsResponse, error)
}

type MarkdownRenderer interface {
	Render(source string) (template.HTML, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	renderer   MarkdownRenderer
	logger     logger.ILogger
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, renderer MarkdownRenderer, log logger.ILogger) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		renderer:   renderer,
		logger:     log,
	}
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		Status:    string(note.Status),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func toNoteResponses(notes []*entity.Note) []*dto.NoteResponse {
	res := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, toNoteResponse(n))
	}
	return res
}

func normalizeNoteRequest(req *dto.NoteRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	return serverutils.ValidateRequest(req)
}

func (s *noteService) Create(ctx context.Context, userId uint, req *dto.NoteRequest) (*dto.NoteResponse, error) {
	if err := normalizeNoteRequest(req); err != nil {
		return nil, err
	}

	note := &entity.Note{
		Title:   req.Title,
		Content: req.Content,
		Status:  entity.NoteStatusActive,
		UserId:  userId,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	return toNoteResponse(note), nil
}

// findOwned returns the note only when userId owns it. Anything else is NotFound.
func (s *noteService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uint, extra ...specification.Specification) (*entity.Note, error) {
	specs := append([]specification.Specification{
		specification.ByID{ID: id},
		specification.NoteOwnedByUser{UserID: userId},
	}, extra...)

	note, err := uow.NoteRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("find note %d: %w", id, err)
	}
	if note == nil {
		return nil, apperror.NotFound("Note", id)
	}
	return note, nil
}

func (s *noteService) Show(ctx context.Context, userId uint, id uint) (*dto.ShowNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	rendered, err := s.renderer.Render(note.Content)
	if err != nil {
		return nil, fmt.Errorf("render note %d: %w", id, err)
	}

	return &dto.ShowNoteResponse{
		NoteResponse:    *toNoteResponse(note),
		RenderedContent: rendered,
	}, nil
}

func (s *noteService) Edit(ctx context.Context, userId uint, id uint) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.findOwned(ctx, uow, userId, id, specification.ActiveNotes())
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, userId uint, id uint, req *dto.NoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.findOwned(ctx, uow, userId, id, specification.ActiveNotes())
	if err != nil {
		return nil, err
	}

	if err := normalizeNoteRequest(req); err != nil {
		return nil, err
	}

	note.Title = req.Title
	note.Content = req.Content
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note %d: %w", id, err)
	}

	updated, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(updated), nil
}

func (s *noteService) setStatus(ctx context.Context, userId, id uint, from, to entity.NoteStatus) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.NoteRepository().UpdateStatus(ctx, to,
		specification.ByID{ID: id},
		specification.NoteOwnedByUser{UserID: userId},
		specification.ByNoteStatus{Status: from},
	)
	if err != nil {
		return fmt.Errorf("set note %d %s: %w", id, to, err)
	}
	if rows == 0 {
		return apperror.NotFound("Note", id)
	}
	return nil
}

func (s *noteService) SoftDelete(ctx context.Context, userId uint, id uint) error {
	return s.setStatus(ctx, userId, id, entity.NoteStatusActive, entity.NoteStatusDeleted)
}

func (s *noteService) Restore(ctx context.Context, userId uint, id uint) error {
	return s.setStatus(ctx, userId, id, entity.NoteStatusDeleted, entity.NoteStatusActive)
}

// HardDelete only removes notes that are already in the trash.
func (s *noteService) HardDelete(ctx context.Context, userId uint, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.NoteRepository().DeleteWhere(ctx,
		specification.ByID{ID: id},
		specification.NoteOwnedByUser{UserID: userId},
		specification.TrashedNotes(),
	)
	if err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	if rows == 0 {
		return apperror.NotFound("Note", id)
	}
	return nil
}

// parseNoteIds keeps positive integer ids, once each, in submission order.
func parseNoteIds(rawIds []string) []uint {
	seen := make(map[uint]struct{}, len(rawIds))
	ids := make([]uint, 0, len(rawIds))
	for _, raw := range rawIds {
		n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil || n == 0 {
			continue
		}
		id := uint(n)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func (s *noteService) BatchSoftDelete(ctx context.Context, userId uint, rawIds []string) (int64, error) {
	ids := parseNoteIds(rawIds)
	if len(ids) == 0 {
		return 0, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.NoteRepository().UpdateStatus(ctx, entity.NoteStatusDeleted,
		specification.ByIDs{IDs: ids},
		specification.NoteOwnedByUser{UserID: userId},
		specification.ActiveNotes(),
	)
	if err != nil {
		return 0, fmt.Errorf("batch delete notes: %w", err)
	}

	s.logger.Info(noteModule, "notes moved to trash", map[string]interface{}{
		"user_id":   userId,
		"requested": len(ids),
		"affected":  rows,
	})
	return rows, nil
}

// ExportFilename keeps ASCII letters and digits and replaces every other
// character with an underscore.
func ExportFilename(title string) string {
	if title == "" {
		return "note.txt"
	}
	var b strings.Builder
	for _, r := range title {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String() + ".txt"
}

func (s *noteService) Export(ctx context.Context, userId uint, id uint) (*dto.ExportNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	return &dto.ExportNoteResponse{
		Filename: ExportFilename(note.Title),
		Body:     fmt.Sprintf("Título: %s\n\n%s", note.Title, note.Content),
	}, nil
}

func (s *noteService) list(ctx context.Context, userId uint, status specification.Specification) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx, specification.NoteOwnedByUser{UserID: userId}, status)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return toNoteResponses(notes), nil
}

func (s *noteService) ListActive(ctx context.Context, userId uint) ([]*dto.NoteResponse, error) {
	return s.list(ctx, userId, specification.ActiveNotes())
}

func (s *noteService) ListTrash(ctx context.Context, userId uint) ([]*dto.NoteResponse, error) {
	return s.list(ctx, userId, specification.TrashedNotes())
}

func (s *noteService) ClearTrash(ctx context.Context, userId uint) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.NoteRepository().DeleteWhere(ctx,
		specification.NoteOwnedByUser{UserID: userId},
		specification.TrashedNotes(),
	)
	if err != nil {
		return 0, fmt.Errorf("clear trash: %w", err)
	}
	return rows, nil
}

func (s *noteService) Counts(ctx context.Context, userId uint) (*dto.NoteCountsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	owner := specification.NoteOwnedByUser{UserID: userId}

	active, err := uow.NoteRepository().Count(ctx, owner, specification.ActiveNotes())
	if err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}
	trashed, err := uow.NoteRepository().Count(ctx, owner, specification.TrashedNotes())
	if err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}

	return &dto.NoteCountsResponse{Active: active, Trashed: trashed}, nil
}
