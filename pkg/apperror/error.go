package apperror

import (
	"fmt"

	"vyria-server/config"
	"vyria-server/pkg/apperror/status"
	"vyria-server/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

// ErrorResponse is the standardized HTTP error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// WriteError logs a structured warning and returns a standardized JSON error
func WriteError(module config.Module, c fiber.Ctx, httpStatus int, code status.ErrorCode, message string, details string) error {
	logger.WithFields(map[string]interface{}{
		"module":        module,
		"status_code":   httpStatus,
		"error_code":    fmt.Sprintf("VY-%d", code),
		"error_message": message,
		"error_details": details,
		"http_method":   c.Method(),
		"path":          c.Path(),
		"url":           c.OriginalURL(),
		"ip":            c.IP(),
	}).Warnf("http error")

	return c.Status(httpStatus).JSON(ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// Shorthands for common error responses

func BadRequest(module config.Module, c fiber.Ctx, code status.ErrorCode, details string) error {
	return WriteError(module, c, fiber.StatusBadRequest, code, "invalid request", details)
}

func InternalError(module config.Module, c fiber.Ctx, err error) error {
	return WriteError(module, c, fiber.StatusInternalServerError, status.ErrorCodeInternal, "internal error", err.Error())
}

// BadGateway reports an upstream provider failure
func BadGateway(module config.Module, c fiber.Ctx, code status.ErrorCode, message string, err error) error {
	return WriteError(module, c, fiber.StatusBadGateway, code, message, err.Error())
}
