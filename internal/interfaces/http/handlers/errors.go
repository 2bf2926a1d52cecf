package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/nr01-risk-api/internal/application/usecases"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
)

// errorStatus traduz os erros do domínio para status HTTP
func errorStatus(err error) int {
	switch {
	case errors.Is(err, usecases.ErrCompanyNotFound),
		errors.Is(err, usecases.ErrSectorNotFound),
		errors.Is(err, usecases.ErrReportNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, risk.ErrInvalidSectorSelection):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, usecases.ErrInvalidTheme),
		errors.Is(err, usecases.ErrInvalidProbability),
		errors.Is(err, usecases.ErrInvalidAnswers),
		errors.Is(err, usecases.ErrInvalidStatus):
		return fiber.StatusBadRequest
	case errors.Is(err, usecases.ErrCompanyClosed):
		return fiber.StatusConflict
	case errors.Is(err, risk.ErrStalePersistedState):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
