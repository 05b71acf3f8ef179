package controller

import (
	"notetaking-web/internal/pkg/serverutils"
	"notetaking-web/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type pageController struct {
	noteService service.INoteService
}

func NewPageController(noteService service.INoteService) IPageController {
	return &pageController{noteService: noteService}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
	r.Get("/healthz", c.Health)
	r.Get("/dashboard", serverutils.RequireAuthenticated, c.Dashboard)
}

func (c *pageController) Home(ctx *fiber.Ctx) error {
	return render(ctx, "index", fiber.Map{"Title": "Notes"})
}

func (c *pageController) Dashboard(ctx *fiber.Ctx) error {
	userId := currentUserID(ctx)

	notes, err := c.noteService.ListActive(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	counts, err := c.noteService.Counts(ctx.UserContext(), userId)
	if err != nil {
		return err
	}

	return render(ctx, "dashboard", fiber.Map{
		"Title":  "Dashboard",
		"Notes":  notes,
		"Counts": counts,
	})
}

func (c *pageController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{"status": "up"}))
}
