package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is a request-scoped failure that maps to a specific HTTP
// status. Anything else bubbling to the error middleware becomes a
// generic 500.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}
