package usecases

import (
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/repositories"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
)

// UseCases agrupa os casos de uso da API
type UseCases struct {
	Companies   *CompanyUseCase
	Surveys     *SurveyUseCase
	Diagnostics *DiagnosticUseCase
	Dashboard   *DashboardUseCase
	Reviewer    *ReviewerUseCase
}

// NewUseCases monta os casos de uso; state guarda o último mapa de probabilidades gravado
func NewUseCases(repos *repositories.Repositories, state risk.StateStore, log *logger.Logger) *UseCases {
	diagnostics := NewDiagnosticUseCase(repos.Companies, repos.Responses, repos.Probabilities, repos.Reports, repos.Reviewer, state, log)

	return &UseCases{
		Companies:   NewCompanyUseCase(repos.Companies, log),
		Surveys:     NewSurveyUseCase(repos.Companies, repos.Responses, diagnostics, log),
		Diagnostics: diagnostics,
		Dashboard:   NewDashboardUseCase(repos.Companies, repos.Responses, repos.Probabilities, log),
		Reviewer:    NewReviewerUseCase(repos.Reviewer),
	}
}
