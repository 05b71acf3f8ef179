package serverutils

import (
	"errors"
	"fmt"
	"html"

	"notetaking-web/internal/pkg/apperror"
	"notetaking-web/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const (
	ErrorView   = "pages/error"
	LayoutView  = "layouts/main"
	errorModule = "http"
)

// StatusFor maps an error to the HTTP status it is reported with.
func StatusFor(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, apperror.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperror.ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrDuplicateEmail):
		return fiber.StatusConflict
	case errors.Is(err, apperror.ErrInvalidCredentials), errors.Is(err, apperror.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func publicMessage(err error, status int) string {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Message
	}
	if status == fiber.StatusInternalServerError {
		return "Something went wrong."
	}
	return apperror.Message(err, fiber.ErrNotFound.Message)
}

// NewErrorHandler renders the error page for anything a handler returns.
// Unauthenticated errors redirect to the login page instead. Details of the
// underlying error are only shown when showDetail is set.
func NewErrorHandler(log logger.ILogger, showDetail bool) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if errors.Is(err, apperror.ErrUnauthenticated) {
			return ctx.Redirect("/login", fiber.StatusFound)
		}

		status := StatusFor(err)
		details := map[string]interface{}{
			"status": status,
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err,
		}
		if status >= fiber.StatusInternalServerError {
			log.Error(errorModule, err.Error(), details)
		} else {
			log.Warn(errorModule, err.Error(), details)
		}

		message := publicMessage(err, status)
		detail := ""
		if showDetail {
			detail = fmt.Sprintf("%+v", err)
		}

		ctx.Status(status)
		renderErr := ctx.Render(ErrorView, fiber.Map{
			"Title":       fmt.Sprintf("Error %d", status),
			"Status":      status,
			"Message":     message,
			"Detail":      detail,
			"CurrentUser": CurrentUser(ctx),
		}, LayoutView)
		if renderErr == nil {
			return nil
		}

		log.Error(errorModule, "error view failed to render", map[string]interface{}{"error": renderErr})
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return ctx.Status(status).SendString(inlineErrorPage(status, message, detail))
	}
}

func inlineErrorPage(status int, message, detail string) string {
	page := fmt.Sprintf("<!DOCTYPE html><html><head><title>Error %d</title></head><body><h1>Error %d</h1><p>%s</p>",
		status, status, html.EscapeString(message))
	if detail != "" {
		page += "<pre>" + html.EscapeString(detail) + "</pre>"
	}
	return page + `<a href="/">Home</a></body></html>`
}
