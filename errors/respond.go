package errors

import (
	"github.com/gofiber/fiber/v2"
)

func RaiseError(context *fiber.Ctx, status int, message string) error {
	return context.Status(status).JSON(fiber.Map{"error": message})
}

// RaiseMessage answers with a "mensaje" body, the shape used by the listing
// endpoint when a filter leaves nothing.
func RaiseMessage(context *fiber.Ctx, status int, message string) error {
	return context.Status(status).JSON(fiber.Map{"mensaje": message})
}

func Raise(context *fiber.Ctx, err error) error {
	return RaiseError(context, Status(err), Message(err))
}

func RaiseNotFoundError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusNotFound, message)
}

func RaiseBadRequestError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusBadRequest, message)
}

func RaiseInternalServerError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusInternalServerError, message)
}

// ErrorHandler is installed as fiber's app level error handler so errors
// returned from handlers and recovered panics share the same body shape.
func ErrorHandler(context *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return RaiseError(context, fe.Code, fe.Message)
	}
	return Raise(context, err)
}
