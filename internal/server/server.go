package server

import (
	"context"
	"log"

	"notetaking-web/internal/bootstrap"
	"notetaking-web/internal/config"
	"notetaking-web/internal/pkg/serverutils"
	"notetaking-web/internal/views"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "notetaking-web",
		Views:        views.NewEngine(),
		ErrorHandler: serverutils.NewErrorHandler(container.Logger, cfg.IsDevelopment()),
		BodyLimit:    1 * 1024 * 1024,
	})

	// Middleware
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.IsDevelopment()}))

	// OpenTelemetry tracing middleware (no-op unless a tracer provider is installed)
	app.Use(otelfiber.Middleware())

	if cfg.App.CookieSecret != "" {
		app.Use(encryptcookie.New(encryptcookie.Config{Key: cfg.App.CookieSecret}))
	}

	if cfg.App.MetricsEnabled {
		registerMetrics(app, cfg.Tracing.ServiceName)
	}

	app.Use(serverutils.SessionMiddleware(container.AuthService, container.SessionCookie))
	app.Use(serverutils.RequestLogger(container.Logger))

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.PageController.RegisterRoutes(app)
	c.AuthController.RegisterRoutes(app)
	c.NoteController.RegisterRoutes(app)
	c.TrashController.RegisterRoutes(app)
	c.UserController.RegisterRoutes(app)
}
