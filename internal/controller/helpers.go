package controller

import (
	"errors"

	"notetaking-web/internal/pkg/apperror"
	"notetaking-web/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

func render(ctx *fiber.Ctx, view string, data fiber.Map) error {
	return ctx.Render(view, data, serverutils.LayoutView)
}

// formErrorStatus reports whether err is something the user can fix by
// resubmitting the form, and with which status the form is shown again.
func formErrorStatus(err error) (int, bool) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return 0, false
	}
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return fiber.StatusUnprocessableEntity, true
	case errors.Is(err, apperror.ErrDuplicateEmail):
		return fiber.StatusConflict, true
	case errors.Is(err, apperror.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, true
	default:
		return 0, false
	}
}

// renderFormError shows view again with the submitted values and the error
// message, or hands err to the error handler when it is not a form error.
func renderFormError(ctx *fiber.Ctx, view string, err error, data fiber.Map) error {
	status, ok := formErrorStatus(err)
	if !ok {
		return err
	}
	data["Error"] = apperror.Message(err, "Please check the form.")
	return ctx.Status(status).Render(view, data, serverutils.LayoutView)
}

// paramID reads a positive integer route parameter. Anything else cannot name
// an existing row and is reported as not found.
func paramID(ctx *fiber.Ctx, resource string) (uint, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperror.NotFound(resource, ctx.Params("id"))
	}
	return uint(id), nil
}

// currentUserID is only called behind RequireAuthenticated.
func currentUserID(ctx *fiber.Ctx) uint {
	return serverutils.CurrentUser(ctx).Id
}
