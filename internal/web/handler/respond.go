package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Error writes a client error response in the shared shape.
func Error(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}

// ServerError logs the cause and writes a generic 500 response.
func ServerError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("storage operation failed")

	return Error(c, fiber.StatusInternalServerError, MsgInternalServerError)
}
