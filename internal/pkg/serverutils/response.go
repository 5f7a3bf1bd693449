package serverutils

import (
	"errors"

	"bookmarkhub-be/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{
		Message: message,
		Data:    data,
	}
}

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}

// ErrorHandler maps domain error kinds onto HTTP statuses. Anything
// unclassified is a 500 with a generic message.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ctx.Status(fiber.StatusBadRequest).JSON(Response{Message: err.Error()})
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(Response{Message: err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		return ctx.Status(fiber.StatusConflict).JSON(Response{Message: err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(Response{Message: err.Error()})
	case errors.Is(err, apperr.ErrUnavailable):
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(Response{Message: err.Error()})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return ctx.Status(fe.Code).JSON(Response{Message: fe.Message})
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(Response{Message: "internal server error"})
}
