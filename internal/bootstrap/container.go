package bootstrap

import (
	"context"
	"time"

	"notetaking-web/internal/config"
	"notetaking-web/internal/controller"
	"notetaking-web/internal/pkg/logger"
	"notetaking-web/internal/pkg/serverutils"
	"notetaking-web/internal/repository/contract"
	"notetaking-web/internal/repository/memory"
	"notetaking-web/internal/repository/redisstore"
	"notetaking-web/internal/repository/unitofwork"
	"notetaking-web/internal/service"
	"notetaking-web/pkg/markdown"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger        logger.ILogger
	SessionCookie serverutils.SessionCookie

	// Services
	AuthService service.IAuthService
	NoteService service.INoteService
	UserService service.IUserService

	// Controllers
	AuthController  controller.IAuthController
	PageController  controller.IPageController
	NoteController  controller.INoteController
	TrashController controller.ITrashController
	UserController  controller.IUserController

	redisClient *redis.Client
}

func NewContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sessionRepo := c.newSessionRepository(cfg)

	c.SessionCookie = serverutils.SessionCookie{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.IsProduction(),
	}

	// 2. Services
	c.AuthService = service.NewAuthService(uowFactory, sessionRepo, service.AuthOptions{
		MinPasswordLength: cfg.Auth.MinPasswordLength,
		BcryptCost:        cfg.Auth.BcryptCost,
		SessionTTL:        cfg.Session.TTL,
	}, sysLogger)
	c.NoteService = service.NewNoteService(uowFactory, markdown.NewRenderer(), sysLogger)
	c.UserService = service.NewUserService(uowFactory, sysLogger)

	// 3. Controllers
	c.AuthController = controller.NewAuthController(c.AuthService, c.SessionCookie, sysLogger)
	c.PageController = controller.NewPageController(c.NoteService)
	c.NoteController = controller.NewNoteController(c.NoteService)
	c.TrashController = controller.NewTrashController(c.NoteService)
	c.UserController = controller.NewUserController(c.UserService, c.AuthService, c.SessionCookie, sysLogger)

	return c
}

// newSessionRepository picks the session store. An unreachable Redis falls
// back to process memory so a single instance still serves requests.
func (c *Container) newSessionRepository(cfg *config.Config) contract.SessionRepository {
	if cfg.Session.Store != "redis" {
		return memory.NewSessionRepository(cfg.Session.TTL, 10*time.Minute)
	}

	opts, err := redis.ParseURL(cfg.Session.RedisURL)
	if err != nil {
		c.Logger.Warn("bootstrap", "invalid REDIS_URL, using in-memory sessions", map[string]interface{}{"error": err})
		return memory.NewSessionRepository(cfg.Session.TTL, 10*time.Minute)
	}

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		c.Logger.Warn("bootstrap", "redis unreachable, using in-memory sessions", map[string]interface{}{"error": err})
		return memory.NewSessionRepository(cfg.Session.TTL, 10*time.Minute)
	}

	c.redisClient = rdb
	c.Logger.Info("bootstrap", "sessions stored in redis", map[string]interface{}{"addr": opts.Addr})
	return redisstore.NewSessionRepository(rdb, cfg.Session.TTL)
}

func (c *Container) Close() error {
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}
