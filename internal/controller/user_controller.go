package controller

import (
	"notetaking-web/internal/dto"
	"notetaking-web/internal/pkg/logger"
	"notetaking-web/internal/pkg/serverutils"
	"notetaking-web/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	DeleteAccount(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
	authService service.IAuthService
	cookie      serverutils.SessionCookie
	logger      logger.ILogger
}

func NewUserController(userService service.IUserService, authService service.IAuthService, cookie serverutils.SessionCookie, log logger.ILogger) IUserController {
	return &userController{
		userService: userService,
		authService: authService,
		cookie:      cookie,
		logger:      log,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users/profile", serverutils.RequireAuthenticated)
	h.Get("", c.Profile)
	h.Post("", c.UpdateProfile)
	h.Post("/delete", c.DeleteAccount)
}

func (c *userController) Profile(ctx *fiber.Ctx) error {
	profile, err := c.userService.GetProfile(ctx.UserContext(), currentUserID(ctx))
	if err != nil {
		return err
	}

	return render(ctx, "users/profile", fiber.Map{
		"Title":   "Profile",
		"Profile": profile,
		"Updated": ctx.Query("updated") == "1",
	})
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	user := serverutils.CurrentUser(ctx)
	if _, err := c.userService.UpdateProfile(ctx.UserContext(), user.Id, &req); err != nil {
		return renderFormError(ctx, "users/profile", err, fiber.Map{
			"Title": "Profile",
			"Profile": dto.UserProfileResponse{
				Id:        user.Id,
				Email:     user.Email,
				Name:      req.Name,
				Pronoun:   req.Pronoun,
				CreatedAt: user.CreatedAt,
			},
		})
	}

	return ctx.Redirect("/users/profile?updated=1", fiber.StatusFound)
}

func (c *userController) DeleteAccount(ctx *fiber.Ctx) error {
	if err := c.userService.DeleteAccount(ctx.UserContext(), currentUserID(ctx)); err != nil {
		return err
	}

	if err := c.authService.Logout(ctx.UserContext(), c.cookie.Token(ctx)); err != nil {
		c.logger.Error("user", "session cleanup after account deletion failed", map[string]interface{}{"error": err})
	}
	c.cookie.Clear(ctx)
	return ctx.Redirect("/", fiber.StatusFound)
}
