package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/repositories"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
)

const (
	accessCodePrefix   = "#Emp-"
	accessCodeLength   = 6
	accessCodeAttempts = 5
	accessCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// CompanyInput são os dados de cadastro de uma empresa
type CompanyInput struct {
	RazaoSocial    string
	NomeFantasia   string
	CNPJ           string
	Cidade         string
	UF             string
	TotalEmployees int
	Sectors        []string
}

// SectorInput é um setor na substituição da lista; ID vazio gera um novo
type SectorInput struct {
	ID   string
	Name string
}

type CompanyUseCase struct {
	companyRepo repositories.ICompanyRepository
	log         *logger.Logger
}

func NewCompanyUseCase(companyRepo repositories.ICompanyRepository, log *logger.Logger) *CompanyUseCase {
	return &CompanyUseCase{
		companyRepo: companyRepo,
		log:         log,
	}
}

// NewAccessCode gera um código no formato #Emp-XXXXXX
func NewAccessCode() string {
	id := uuid.New()
	var b strings.Builder
	b.WriteString(accessCodePrefix)
	for i := 0; i < accessCodeLength; i++ {
		b.WriteByte(accessCodeAlphabet[int(id[i])%len(accessCodeAlphabet)])
	}
	return b.String()
}

// CreateCompany cadastra a empresa com status Aberto e um código de acesso único
func (u *CompanyUseCase) CreateCompany(ctx context.Context, in CompanyInput) (*entities.Company, error) {
	code, err := u.uniqueAccessCode(ctx)
	if err != nil {
		return nil, err
	}

	company := &entities.Company{
		Base:           entities.Base{ID: uuid.NewString()},
		RazaoSocial:    strings.TrimSpace(in.RazaoSocial),
		NomeFantasia:   strings.TrimSpace(in.NomeFantasia),
		CNPJ:           strings.TrimSpace(in.CNPJ),
		Cidade:         strings.TrimSpace(in.Cidade),
		UF:             strings.ToUpper(strings.TrimSpace(in.UF)),
		TotalEmployees: in.TotalEmployees,
		AccessCode:     code,
		Status:         entities.CompanyStatusAberto,
		Sectors:        newSectors(sectorInputs(in.Sectors)),
	}

	if err := u.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	u.log.Info("Empresa cadastrada", "company_id", company.ID, "access_code", company.AccessCode)
	return company, nil
}

func (u *CompanyUseCase) uniqueAccessCode(ctx context.Context) (string, error) {
	for i := 0; i < accessCodeAttempts; i++ {
		code := NewAccessCode()
		exists, err := u.companyRepo.AccessCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("não foi possível gerar um código de acesso único após %d tentativas", accessCodeAttempts)
}

func (u *CompanyUseCase) GetCompany(ctx context.Context, id string) (*entities.Company, error) {
	company, err := u.companyRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrCompanyNotFound
	}
	return company, err
}

// GetCompanyByAccessCode busca a empresa pelo código, sem diferenciar maiúsculas
func (u *CompanyUseCase) GetCompanyByAccessCode(ctx context.Context, code string) (*entities.Company, error) {
	code = strings.TrimSpace(code)
	if strings.HasPrefix(strings.ToUpper(code), strings.ToUpper(accessCodePrefix)) {
		code = accessCodePrefix + strings.ToUpper(code[len(accessCodePrefix):])
	}

	company, err := u.companyRepo.FindByAccessCode(ctx, code)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrCompanyNotFound
	}
	return company, err
}

// UpdateSectors substitui a lista de setores da empresa
func (u *CompanyUseCase) UpdateSectors(ctx context.Context, companyID string, sectors []SectorInput) (*entities.Company, error) {
	err := u.companyRepo.ReplaceSectors(ctx, companyID, newSectors(sectors))
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return u.GetCompany(ctx, companyID)
}

// UpdateStatus abre ou fecha a coleta de respostas da empresa
func (u *CompanyUseCase) UpdateStatus(ctx context.Context, companyID string, status entities.CompanyStatus) (*entities.Company, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	err := u.companyRepo.UpdateStatus(ctx, companyID, status)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}

	u.log.Info("Status da empresa atualizado", "company_id", companyID, "status", status)
	return u.GetCompany(ctx, companyID)
}

func sectorInputs(names []string) []SectorInput {
	out := make([]SectorInput, 0, len(names))
	for _, name := range names {
		out = append(out, SectorInput{Name: name})
	}
	return out
}

func newSectors(in []SectorInput) []entities.Sector {
	sectors := make([]entities.Sector, 0, len(in))
	for _, s := range in {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		id := strings.TrimSpace(s.ID)
		// "all" é reservado para a visão geral
		if id == "" || risk.IsAggregate(id) {
			id = uuid.NewString()
		}
		sectors = append(sectors, entities.Sector{ID: id, Name: name})
	}
	return sectors
}
