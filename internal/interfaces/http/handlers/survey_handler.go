package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/nr01-risk-api/internal/application/usecases"
)

// SurveyHandler lida com requisições relacionadas às respostas do questionário
type SurveyHandler struct {
	surveyUseCase *usecases.SurveyUseCase
}

// NewSurveyHandler cria uma nova instância de SurveyHandler
func NewSurveyHandler(surveyUseCase *usecases.SurveyUseCase) *SurveyHandler {
	return &SurveyHandler{
		surveyUseCase: surveyUseCase,
	}
}

// SubmitResponse grava um questionário respondido
func (h *SurveyHandler) SubmitResponse(c *fiber.Ctx) error {
	var req SubmitResponseRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	response, err := h.surveyUseCase.SubmitResponse(c.UserContext(), usecases.SubmitResponseInput{
		CompanyID:   req.CompanyID,
		SectorID:    req.SectorID,
		JobFunction: req.JobFunction,
		Answers:     req.Answers,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// ListResponses retorna as respostas da empresa
// Query: sector_id, from, to (2006-01-02 ou RFC3339)
func (h *SurveyHandler) ListResponses(c *fiber.Ctx) error {
	from, err := h.surveyUseCase.ParseDateParam(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de data inválido para from"})
	}

	toStr := c.Query("to")
	to, err := h.surveyUseCase.ParseDateParam(toStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de data inválido para to"})
	}
	// Data simples inclui o dia inteiro
	if len(toStr) == len("2006-01-02") {
		to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, to.Location())
	}

	responses, err := h.surveyUseCase.ListResponses(c.UserContext(), c.Params("company_id"), c.Query("sector_id"), from, to)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":  responses,
		"total": len(responses),
	})
}
