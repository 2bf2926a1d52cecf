package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/nr01-risk-api/internal/application/usecases"
)

// DashboardHandler lida com requisições relacionadas ao painel da empresa
type DashboardHandler struct {
	dashboardUseCase *usecases.DashboardUseCase
}

// NewDashboardHandler cria uma nova instância de DashboardHandler
func NewDashboardHandler(dashboardUseCase *usecases.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// GetCompanyDashboard retorna participação e a matriz média da empresa
func (h *DashboardHandler) GetCompanyDashboard(c *fiber.Ctx) error {
	startTime := time.Now()

	result, err := h.dashboardUseCase.GetCompanyDashboard(c.UserContext(), c.Params("company_id"))
	if err != nil {
		return respondError(c, err)
	}

	etag := fmt.Sprintf(`W/"%s"`, result.ETag)

	// Verificar se o cliente já tem a versão mais recente
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}

	// Adicionar ETag no cabeçalho de resposta
	c.Set(fiber.HeaderETag, etag)

	// Calcular tempo de execução
	executionTime := time.Since(startTime).Milliseconds()

	return c.JSON(fiber.Map{
		"data": result,
		"performance": fiber.Map{
			"execution_time_ms": executionTime,
		},
	})
}
