package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the envelope every failed request returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Success: false, Message: message})
}
