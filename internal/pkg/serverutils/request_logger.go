package serverutils

import (
	"time"

	"notetaking-web/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger writes one access log line per request. Register it after
// the session middleware so the user id is known.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			status = StatusFor(err)
		}

		details := map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         ctx.IP(),
		}
		if user := CurrentUser(ctx); user != nil {
			details["user_id"] = user.Id
		}
		log.Info("access", "request handled", details)

		return err
	}
}
