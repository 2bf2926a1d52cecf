package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/nr01-risk-api/internal/application/usecases"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
)

// CompanyHandler lida com requisições de cadastro de empresas e setores
type CompanyHandler struct {
	companyUseCase *usecases.CompanyUseCase
}

// NewCompanyHandler cria uma nova instância de CompanyHandler
func NewCompanyHandler(companyUseCase *usecases.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{
		companyUseCase: companyUseCase,
	}
}

// CreateCompany cadastra uma empresa e retorna o código de acesso
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var req CreateCompanyRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	company, err := h.companyUseCase.CreateCompany(c.UserContext(), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// GetCompany retorna a empresa com seus setores
func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	company, err := h.companyUseCase.GetCompany(c.UserContext(), c.Params("company_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(company)
}

// FindCompany busca a empresa pelo código de acesso (?access_code=#Emp-XXXXXX)
func (h *CompanyHandler) FindCompany(c *fiber.Ctx) error {
	code := c.Query("access_code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parâmetro access_code é obrigatório"})
	}

	company, err := h.companyUseCase.GetCompanyByAccessCode(c.UserContext(), code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(company)
}

// UpdateSectors substitui a lista de setores da empresa
func (h *CompanyHandler) UpdateSectors(c *fiber.Ctx) error {
	var req UpdateSectorsRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	company, err := h.companyUseCase.UpdateSectors(c.UserContext(), c.Params("company_id"), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(company)
}

// UpdateStatus abre ou fecha a empresa para novas respostas
func (h *CompanyHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	company, err := h.companyUseCase.UpdateStatus(c.UserContext(), c.Params("company_id"), entities.CompanyStatus(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(company)
}
