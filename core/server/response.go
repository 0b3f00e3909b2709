package server

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Fail writes a failure envelope with the given status.
func Fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   code,
		Message: message,
	})
}
