package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CallerHeader carries the caller identity set by the upstream identity
// proxy. Token verification happens there; by the time a request reaches
// this service the id is already authenticated.
const CallerHeader = "X-Caller-Id"

func CallerMiddleware(ctx *fiber.Ctx) error {
	raw := ctx.Get(CallerHeader)
	if raw == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing caller identity"})
	}

	callerId, err := uuid.Parse(raw)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid caller identity"})
	}

	ctx.Locals("caller_id", callerId)
	return ctx.Next()
}

// CallerID reads the authenticated caller set by CallerMiddleware.
func CallerID(ctx *fiber.Ctx) uuid.UUID {
	if id, ok := ctx.Locals("caller_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
