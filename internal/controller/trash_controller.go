package controller

import (
	"fmt"

	"notetaking-web/internal/pkg/serverutils"
	"notetaking-web/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITrashController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type trashController struct {
	noteService service.INoteService
}

func NewTrashController(noteService service.INoteService) ITrashController {
	return &trashController{noteService: noteService}
}

func (c *trashController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users/trash", serverutils.RequireAuthenticated)
	h.Get("", c.List)
	h.Post("/clear", c.Clear)
	h.Post("/:id/restore", c.Restore)
	h.Post("/:id/delete", c.Delete)
}

func (c *trashController) List(ctx *fiber.Ctx) error {
	notes, err := c.noteService.ListTrash(ctx.UserContext(), currentUserID(ctx))
	if err != nil {
		return err
	}

	return render(ctx, "users/trash", fiber.Map{
		"Title":   "Trash",
		"Notes":   notes,
		"Cleared": ctx.QueryInt("cleared", -1),
	})
}

func (c *trashController) Restore(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "Note")
	if err != nil {
		return err
	}

	if err := c.noteService.Restore(ctx.UserContext(), currentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.Redirect("/users/trash", fiber.StatusFound)
}

func (c *trashController) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "Note")
	if err != nil {
		return err
	}

	if err := c.noteService.HardDelete(ctx.UserContext(), currentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.Redirect("/users/trash", fiber.StatusFound)
}

func (c *trashController) Clear(ctx *fiber.Ctx) error {
	cleared, err := c.noteService.ClearTrash(ctx.UserContext(), currentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.Redirect(fmt.Sprintf("/users/trash?cleared=%d", cleared), fiber.StatusFound)
}
