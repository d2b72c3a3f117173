package presenter

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/asemic/pkg/artifact"
	"github.com/artem13815/asemic/pkg/generation"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// StatusOf maps domain errors to HTTP status codes.
func StatusOf(err error) int {
	var fe *fiber.Error
	switch {
	case errors.Is(err, generation.ErrEmptyPrompt):
		return fiber.StatusBadRequest
	case errors.Is(err, artifact.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &fe):
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// Err writes err with the status StatusOf picks.
func Err(c *fiber.Ctx, err error) error {
	return Error(c, StatusOf(err), err.Error())
}

// ErrorHandler is the Fiber fallback for errors returned by handlers and
// middleware, so every error body has the same shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return Err(c, err)
}
