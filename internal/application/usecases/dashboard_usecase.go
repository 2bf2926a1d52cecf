package usecases

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/repositories"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
)

type DashboardUseCase struct {
	companyRepo     repositories.ICompanyRepository
	responseRepo    repositories.IResponseRepository
	probabilityRepo repositories.IProbabilityRepository
	log             *logger.Logger
}

func NewDashboardUseCase(companyRepo repositories.ICompanyRepository, responseRepo repositories.IResponseRepository, probabilityRepo repositories.IProbabilityRepository, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		companyRepo:     companyRepo,
		responseRepo:    responseRepo,
		probabilityRepo: probabilityRepo,
		log:             log,
	}
}

// GetCompanyDashboard monta o painel do gestor: participação e matriz média da empresa.
// A probabilidade de cada tema é a média entre os setores com valores persistidos.
func (u *DashboardUseCase) GetCompanyDashboard(ctx context.Context, companyID string) (*entities.CompanyDashboard, error) {
	company, err := u.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	var (
		responses []entities.SurveyResponse
		counts    map[string]int64
		rows      []entities.ProbabilityAssessment
	)

	// Buscar dados em paralelo
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		responses, err = u.responseRepo.FindByCompany(gctx, companyID, repositories.ResponseFilter{SectorID: risk.AllSectors})
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = u.responseRepo.CountBySector(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = u.probabilityRepo.FindByCompany(gctx, companyID)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Error("Erro ao montar dashboard", "company_id", companyID, "error", err)
		return nil, err
	}

	sectorValues := make(map[string]map[int]int)
	for _, row := range rows {
		if sectorValues[row.SectorID] == nil {
			sectorValues[row.SectorID] = make(map[int]int)
		}
		sectorValues[row.SectorID][row.ThemeIdx] = row.Value
	}

	total := int64(len(responses))
	dashboard := &entities.CompanyDashboard{
		CompanyID:         company.ID,
		NomeFantasia:      company.NomeFantasia,
		Status:            company.Status,
		TotalResponses:    total,
		TotalEmployees:    company.TotalEmployees,
		Participation:     entities.ParticipationRate(total, company.TotalEmployees),
		ResponsesBySector: counts,
		Themes:            risk.CompanyOverview(risk.Questions, entities.ToRiskResponses(responses), sectorValues),
	}
	dashboard.CalculateETag()

	return dashboard, nil
}
