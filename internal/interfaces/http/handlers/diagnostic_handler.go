package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/nr01-risk-api/internal/application/usecases"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
)

// DiagnosticHandler lida com o diagnóstico por setor, probabilidades e laudos
type DiagnosticHandler struct {
	diagnosticUseCase *usecases.DiagnosticUseCase
}

// NewDiagnosticHandler cria uma nova instância de DiagnosticHandler
func NewDiagnosticHandler(diagnosticUseCase *usecases.DiagnosticUseCase) *DiagnosticHandler {
	return &DiagnosticHandler{
		diagnosticUseCase: diagnosticUseCase,
	}
}

// GetDiagnostic retorna as métricas dos 9 temas (?sector_id=all por padrão)
func (h *DiagnosticHandler) GetDiagnostic(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	sectorID := c.Query("sector_id", risk.AllSectors)

	metrics, err := h.diagnosticUseCase.ComputeThemeMetrics(c.UserContext(), companyID, sectorID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"company_id": companyID,
		"sector_id":  sectorID,
		"themes":     metrics,
	})
}

// Reconcile força uma passagem de reconciliação do setor
func (h *DiagnosticHandler) Reconcile(c *fiber.Ctx) error {
	result, err := h.diagnosticUseCase.ReconcileProbabilities(c.UserContext(), c.Params("company_id"), c.Params("sector_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// ListProbabilities retorna as probabilidades persistidas do setor
func (h *DiagnosticHandler) ListProbabilities(c *fiber.Ctx) error {
	rows, err := h.diagnosticUseCase.ListProbabilities(c.UserContext(), c.Params("company_id"), c.Params("sector_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": rows})
}

// SetProbability grava o valor definido pelo RT para um tema
func (h *DiagnosticHandler) SetProbability(c *fiber.Ctx) error {
	theme, err := c.ParamsInt("theme")
	if err != nil {
		return respondError(c, usecases.ErrInvalidTheme)
	}

	var req ProbabilityRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	companyID, sectorID := c.Params("company_id"), c.Params("sector_id")
	if err := h.diagnosticUseCase.SetProbability(c.UserContext(), companyID, sectorID, theme, req.Value); err != nil {
		return respondError(c, err)
	}
	return h.ListProbabilities(c)
}

// ClearProbability remove o valor do RT; o tema volta ao derivado
func (h *DiagnosticHandler) ClearProbability(c *fiber.Ctx) error {
	theme, err := c.ParamsInt("theme")
	if err != nil {
		return respondError(c, usecases.ErrInvalidTheme)
	}

	companyID, sectorID := c.Params("company_id"), c.Params("sector_id")
	if err := h.diagnosticUseCase.ClearProbability(c.UserContext(), companyID, sectorID, theme); err != nil {
		return respondError(c, err)
	}
	return h.ListProbabilities(c)
}

// SaveReport monta e salva uma nova versão do laudo do setor
func (h *DiagnosticHandler) SaveReport(c *fiber.Ctx) error {
	var req SaveReportRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	ctx := c.UserContext()
	report, err := h.diagnosticUseCase.AssembleReport(ctx, c.Params("company_id"), c.Params("sector_id"), req.annotations(), req.Author)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.diagnosticUseCase.SaveReport(ctx, report); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

// GetCurrentReport retorna a versão vigente do laudo
func (h *DiagnosticHandler) GetCurrentReport(c *fiber.Ctx) error {
	report, err := h.diagnosticUseCase.GetCurrentReport(c.UserContext(), c.Params("company_id"), c.Params("sector_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// ReportHistory lista as versões do laudo
func (h *DiagnosticHandler) ReportHistory(c *fiber.Ctx) error {
	reports, err := h.diagnosticUseCase.ReportHistory(c.UserContext(), c.Params("company_id"), c.Params("sector_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data":  reports,
		"total": len(reports),
	})
}

// ReportView retorna o inventário de riscos pronto para impressão
func (h *DiagnosticHandler) ReportView(c *fiber.Ctx) error {
	view, err := h.diagnosticUseCase.ReportView(c.UserContext(), c.Params("company_id"), c.Params("sector_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}
