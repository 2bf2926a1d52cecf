package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/repositories"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/database"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
)

type testEnv struct {
	companyRepo     *repositories.CompanyRepository
	responseRepo    *repositories.ResponseRepository
	probabilityRepo *repositories.ProbabilityRepository
	reportRepo      *repositories.ReportRepository
	reviewerRepo    *repositories.ReviewerRepository

	companies   *CompanyUseCase
	diagnostics *DiagnosticUseCase
	surveys     *SurveyUseCase
	dashboard   *DashboardUseCase
	reviewer    *ReviewerUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	log := logger.NewNop()
	require.NoError(t, database.Prepare(db, log))

	state := cache.NewMemoryProbabilityState(time.Hour)
	t.Cleanup(func() {
		_ = state.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	env := &testEnv{
		companyRepo:     repositories.NewCompanyRepository(db, time.Minute),
		responseRepo:    repositories.NewResponseRepository(db),
		probabilityRepo: repositories.NewProbabilityRepository(db),
		reportRepo:      repositories.NewReportRepository(db),
		reviewerRepo:    repositories.NewReviewerRepository(db),
	}
	env.companies = NewCompanyUseCase(env.companyRepo, log)
	env.diagnostics = NewDiagnosticUseCase(env.companyRepo, env.responseRepo, env.probabilityRepo, env.reportRepo, env.reviewerRepo, state, log)
	env.surveys = NewSurveyUseCase(env.companyRepo, env.responseRepo, env.diagnostics, log)
	env.dashboard = NewDashboardUseCase(env.companyRepo, env.responseRepo, env.probabilityRepo, log)
	env.reviewer = NewReviewerUseCase(env.reviewerRepo)
	return env
}

// seedCompany cria a empresa c1 com os setores s1 e s2
func (e *testEnv) seedCompany(t *testing.T) *entities.Company {
	t.Helper()
	company := &entities.Company{
		Base:           entities.Base{ID: "c1"},
		RazaoSocial:    "Acme Indústria LTDA",
		NomeFantasia:   "Acme",
		CNPJ:           "12.345.678/0001-90",
		Cidade:         "Campinas",
		UF:             "SP",
		TotalEmployees: 10,
		AccessCode:     "#Emp-TEST01",
		Status:         entities.CompanyStatusAberto,
		Sectors: []entities.Sector{
			{ID: "s1", Name: "Produção"},
			{ID: "s2", Name: "Administrativo"},
		},
	}
	require.NoError(t, e.companyRepo.Create(context.Background(), company))
	return company
}

// answersWithRisk responde as 90 questões com risco máximo (gravidade 3) ou mínimo (gravidade 1)
func answersWithRisk(high bool) map[int]int {
	answers := make(map[int]int, len(risk.Questions))
	for _, q := range risk.Questions {
		v := 0
		if high != q.Inverted {
			v = risk.MaxAnswer
		}
		answers[q.ID] = v
	}
	return answers
}

func (e *testEnv) submit(t *testing.T, sectorID string, high bool) {
	t.Helper()
	_, err := e.surveys.SubmitResponse(context.Background(), SubmitResponseInput{
		CompanyID:   "c1",
		SectorID:    sectorID,
		JobFunction: "Operador",
		Answers:     answersWithRisk(high),
	})
	require.NoError(t, err)
}
