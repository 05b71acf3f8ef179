package serverutils

import (
	"context"
	"time"

	"notetaking-web/internal/entity"

	"github.com/gofiber/fiber/v2"
)

const userLocalsKey = "user"

// SessionResolver turns a session token into its user. Any error means the
// request is treated as anonymous.
type SessionResolver interface {
	Deserialize(ctx context.Context, token string) (*entity.User, error)
}

type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (c SessionCookie) Set(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		Expires:  time.Now().Add(c.TTL),
		HTTPOnly: true,
		Secure:   c.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (c SessionCookie) Clear(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   c.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (c SessionCookie) Token(ctx *fiber.Ctx) string {
	return ctx.Cookies(c.Name)
}

// SessionMiddleware resolves the session cookie on every request and stores
// the user in locals. A cookie that does not resolve is cleared.
func SessionMiddleware(resolver SessionResolver, cookie SessionCookie) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := cookie.Token(ctx)
		if token == "" {
			return ctx.Next()
		}

		user, err := resolver.Deserialize(ctx.UserContext(), token)
		if err != nil || user == nil {
			cookie.Clear(ctx)
			return ctx.Next()
		}

		ctx.Locals(userLocalsKey, user)
		// Templates read the header user from the view binding.
		_ = ctx.Bind(fiber.Map{"CurrentUser": user})
		return ctx.Next()
	}
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(ctx *fiber.Ctx) *entity.User {
	user, ok := ctx.Locals(userLocalsKey).(*entity.User)
	if !ok {
		return nil
	}
	return user
}

func RequireAuthenticated(ctx *fiber.Ctx) error {
	if CurrentUser(ctx) == nil {
		return ctx.Redirect("/login", fiber.StatusFound)
	}
	return ctx.Next()
}

func RequireUnauthenticated(ctx *fiber.Ctx) error {
	if CurrentUser(ctx) != nil {
		return ctx.Redirect("/dashboard", fiber.StatusFound)
	}
	return ctx.Next()
}
