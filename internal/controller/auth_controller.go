package controller

import (
	"notetaking-web/internal/dto"
	"notetaking-web/internal/entity"
	"notetaking-web/internal/pkg/logger"
	"notetaking-web/internal/pkg/serverutils"
	"notetaking-web/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	RegisterForm(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	LoginForm(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	cookie  serverutils.SessionCookie
	logger  logger.ILogger
}

func NewAuthController(service service.IAuthService, cookie serverutils.SessionCookie, log logger.ILogger) IAuthController {
	return &authController{service: service, cookie: cookie, logger: log}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/register", serverutils.RequireUnauthenticated, c.RegisterForm)
	r.Post("/register", serverutils.RequireUnauthenticated, c.Register)
	r.Get("/login", serverutils.RequireUnauthenticated, c.LoginForm)
	r.Post("/login", serverutils.RequireUnauthenticated, c.Login)
	r.Get("/logout", serverutils.RequireAuthenticated, c.Logout)
}

func (c *authController) RegisterForm(ctx *fiber.Ctx) error {
	return render(ctx, "register", fiber.Map{"Title": "Create account"})
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	user, err := c.service.Register(ctx.UserContext(), &req)
	if err != nil {
		return renderFormError(ctx, "register", err, fiber.Map{
			"Title": "Create account",
			"Name":  req.Name,
			"Email": req.Email,
		})
	}

	// New accounts are signed in straight away.
	if err := c.startSession(ctx, user); err != nil {
		return err
	}
	return ctx.Redirect("/dashboard", fiber.StatusFound)
}

func (c *authController) LoginForm(ctx *fiber.Ctx) error {
	return render(ctx, "login", fiber.Map{"Title": "Log in"})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	user, err := c.service.Authenticate(ctx.UserContext(), &req)
	if err != nil {
		return renderFormError(ctx, "login", err, fiber.Map{
			"Title": "Log in",
			"Email": req.Email,
		})
	}

	if err := c.startSession(ctx, user); err != nil {
		return err
	}
	return ctx.Redirect("/dashboard", fiber.StatusFound)
}

func (c *authController) startSession(ctx *fiber.Ctx, user *entity.User) error {
	token, err := c.service.Serialize(ctx.UserContext(), user)
	if err != nil {
		return err
	}
	c.cookie.Set(ctx, token)
	c.logger.Info("auth", "session started", map[string]interface{}{"user_id": user.Id})
	return nil
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.service.Logout(ctx.UserContext(), c.cookie.Token(ctx)); err != nil {
		c.logger.Error("auth", "logout failed", map[string]interface{}{"error": err})
	}
	c.cookie.Clear(ctx)
	return ctx.Redirect("/", fiber.StatusFound)
}
