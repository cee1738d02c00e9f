package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/sheikh-saqib/gpa-calculator/internal/evaluator"
	"github.com/sheikh-saqib/gpa-calculator/internal/ledger"
)

func success(c *fiber.Ctx, message string, data any) error {
	return successWithCode(c, fiber.StatusOK, message, data)
}

func successWithCode(c *fiber.Ctx, code int, message string, data any) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func errorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

func errorWithDetails(c *fiber.Ctx, code int, message string, details any) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  details,
	})
}

// validationFailed reports request fields rejected by the validator.
func validationFailed(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errorResponse(c, fiber.StatusBadRequest, "invalid input")
	}

	fields := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}
	return errorWithDetails(c, fiber.StatusBadRequest, "validation failed", fields)
}

// domainError maps ledger and evaluator errors to HTTP responses.
func domainError(c *fiber.Ctx, err error) error {
	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		return errorWithDetails(c, fiber.StatusUnprocessableEntity, verr.Error(), fiber.Map{"reason": verr.Reason})
	case errors.Is(err, ledger.ErrNotFound):
		return errorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, evaluator.ErrEmptyLedger):
		return errorResponse(c, fiber.StatusUnprocessableEntity, "add at least one subject first")
	}
	return err
}
