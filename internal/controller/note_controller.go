package controller

import (
	"fmt"

	"notetaking-web/internal/dto"
	"notetaking-web/internal/pkg/serverutils"
	"notetaking-web/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	CreateForm(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	EditForm(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	BatchDelete(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes", serverutils.RequireAuthenticated)
	h.Get("/create", c.CreateForm)
	h.Post("/create", c.Create)
	h.Post("/batch-delete", c.BatchDelete)
	h.Get("/:id", c.Show)
	h.Get("/:id/edit", c.EditForm)
	h.Post("/:id/edit", c.Update)
	h.Post("/:id/delete", c.Delete)
	h.Get("/:id/download", c.Download)
}

func (c *noteController) CreateForm(ctx *fiber.Ctx) error {
	return render(ctx, "notes/form", fiber.Map{
		"Title":  "New note",
		"Action": "/notes/create",
		"Note":   dto.NoteRequest{},
	})
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.NoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if _, err := c.noteService.Create(ctx.UserContext(), currentUserID(ctx), &req); err != nil {
		return renderFormError(ctx, "notes/form", err, fiber.Map{
			"Title":  "New note",
			"Action": "/notes/create",
			"Note":   req,
		})
	}

	return ctx.Redirect("/dashboard", fiber.StatusFound)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "Note")
	if err != nil {
		return err
	}

	note, err := c.noteService.Show(ctx.UserContext(), currentUserID(ctx), id)
	if err != nil {
		return err
	}

	return render(ctx, "notes/show", fiber.Map{
		"Title": note.Title,
		"Note":  note,
	})
}

func (c *noteController) EditForm(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "Note")
	if err != nil {
		return err
	}

	note, err := c.noteService.Edit(ctx.UserContext(), currentUserID(ctx), id)
	if err != nil {
		return err
	}

	return render(ctx, "notes/form", fiber.Map{
		"Title":  "Edit note",
		"Action": fmt.Sprintf("/notes/%d/edit", id),
		"Note":   dto.NoteRequest{Title: note.Title, Content: note.Content},
	})
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "Note")
	if err != nil {
		return err
	}

	var req dto.NoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if _, err := c.noteService.Update(ctx.UserContext(), currentUserID(ctx), id, &req); err != nil {
		return renderFormError(ctx, "notes/form", err, fiber.Map{
			"Title":  "Edit note",
			"Action": fmt.Sprintf("/notes/%d/edit", id),
			"Note":   req,
		})
	}

	return ctx.Redirect("/dashboard", fiber.StatusFound)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "Note")
	if err != nil {
		return err
	}

	if err := c.noteService.SoftDelete(ctx.UserContext(), currentUserID(ctx), id); err != nil {
		return err
	}

	return ctx.Redirect("/dashboard", fiber.StatusFound)
}

// BatchDelete accepts noteIds or noteIds[], sent once or repeated, in an
// urlencoded or multipart body.
func (c *noteController) BatchDelete(ctx *fiber.Ctx) error {
	args := ctx.Request().PostArgs()
	multipart, _ := ctx.MultipartForm()

	var rawIds []string
	for _, key := range []string{"noteIds", "noteIds[]"} {
		for _, v := range args.PeekMulti(key) {
			rawIds = append(rawIds, string(v))
		}
		if multipart != nil {
			rawIds = append(rawIds, multipart.Value[key]...)
		}
	}

	if _, err := c.noteService.BatchSoftDelete(ctx.UserContext(), currentUserID(ctx), rawIds); err != nil {
		return err
	}

	return ctx.Redirect("/dashboard", fiber.StatusFound)
}

func (c *noteController) Download(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "Note")
	if err != nil {
		return err
	}

	export, err := c.noteService.Export(ctx.UserContext(), currentUserID(ctx), id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	return ctx.SendString(export.Body)
}
