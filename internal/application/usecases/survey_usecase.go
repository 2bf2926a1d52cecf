package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/repositories"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
)

// SubmitResponseInput é um questionário respondido
type SubmitResponseInput struct {
	CompanyID   string
	SectorID    string
	JobFunction string
	Answers     map[int]int
}

// SurveyUseCase implementa os casos de uso relacionados às respostas do questionário
type SurveyUseCase struct {
	companyRepo  repositories.ICompanyRepository
	responseRepo repositories.IResponseRepository
	diagnostics  *DiagnosticUseCase
	log          *logger.Logger
	now          func() time.Time
}

// NewSurveyUseCase cria uma nova instância de SurveyUseCase
func NewSurveyUseCase(companyRepo repositories.ICompanyRepository, responseRepo repositories.IResponseRepository, diagnostics *DiagnosticUseCase, log *logger.Logger) *SurveyUseCase {
	return &SurveyUseCase{
		companyRepo:  companyRepo,
		responseRepo: responseRepo,
		diagnostics:  diagnostics,
		log:          log,
		now:          time.Now,
	}
}

// ValidAnswers verifica ids de 1 a 90 e valores de 0 a 4
func ValidAnswers(answers map[int]int) bool {
	if len(answers) == 0 {
		return false
	}
	for id, v := range answers {
		if risk.ThemeOf(id) < 0 || v < 0 || v > risk.MaxAnswer {
			return false
		}
	}
	return true
}

// SubmitResponse grava a resposta e reconcilia o setor afetado
func (u *SurveyUseCase) SubmitResponse(ctx context.Context, in SubmitResponseInput) (*entities.SurveyResponse, error) {
	if !ValidAnswers(in.Answers) {
		return nil, ErrInvalidAnswers
	}

	company, err := u.companyRepo.FindByID(ctx, in.CompanyID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	if company.Status == entities.CompanyStatusFechado {
		return nil, ErrCompanyClosed
	}

	sectorID := strings.TrimSpace(in.SectorID)
	if sectorID != "" && !company.HasSector(sectorID) {
		return nil, ErrSectorNotFound
	}

	answers := make(map[int]int, len(in.Answers))
	for id, v := range in.Answers {
		answers[id] = v
	}

	response := &entities.SurveyResponse{
		ID:          uuid.NewString(),
		CompanyID:   company.ID,
		SectorID:    sectorID,
		JobFunction: strings.TrimSpace(in.JobFunction),
		CompletedAt: u.now().UTC(),
		Answers:     datatypes.NewJSONType(answers),
	}
	if err := u.responseRepo.Create(ctx, response); err != nil {
		return nil, err
	}
	responsesSubmitted.Inc()

	if sectorID != "" && u.diagnostics != nil {
		u.diagnostics.triggerReconcile(ctx, company.ID, sectorID)
	}
	return response, nil
}

// ListResponses retorna as respostas da empresa com filtros de setor e período
func (u *SurveyUseCase) ListResponses(ctx context.Context, companyID, sectorID string, from, to time.Time) ([]entities.SurveyResponse, error) {
	if _, err := u.companyRepo.FindByID(ctx, companyID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	return u.responseRepo.FindByCompany(ctx, companyID, repositories.ResponseFilter{
		SectorID: sectorID,
		From:     from,
		To:       to,
	})
}

// ParseDateParam converte uma string de data para time.Time
func (u *SurveyUseCase) ParseDateParam(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	// Tentar formato ISO8601 com timezone
	t, err := time.Parse(time.RFC3339, dateStr)
	if err == nil {
		return t, nil
	}

	// Tentar formato de data simples
	t, err = time.Parse("2006-01-02", dateStr)
	if err == nil {
		// Definir hora para início do dia (00:00:00)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
	}

	// Tentar formato de data e hora sem timezone
	t, err = time.Parse("2006-01-02T15:04:05", dateStr)
	if err == nil {
		return t, nil
	}

	return time.Time{}, err
}
