package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
	"github.com/PavaniTiago/nr01-risk-api/internal/utils"
)

// ResponseFilter define os filtros de listagem de respostas.
// SectorID vazio ou "all" não filtra por setor; datas zero não limitam o período.
type ResponseFilter struct {
	SectorID string
	From     time.Time
	To       time.Time
}

type IResponseRepository interface {
	Create(ctx context.Context, response *entities.SurveyResponse) error
	FindByCompany(ctx context.Context, companyID string, filter ResponseFilter) ([]entities.SurveyResponse, error)
	CountBySector(ctx context.Context, companyID string) (map[string]int64, error)
}

type ResponseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db: db,
	}
}

func (r *ResponseRepository) Create(ctx context.Context, response *entities.SurveyResponse) error {
	if err := r.db.WithContext(ctx).Create(response).Error; err != nil {
		return fmt.Errorf("erro ao salvar resposta: %w", err)
	}
	return nil
}

func (r *ResponseRepository) FindByCompany(ctx context.Context, companyID string, filter ResponseFilter) ([]entities.SurveyResponse, error) {
	var responses []entities.SurveyResponse

	query := r.db.WithContext(ctx).Model(&entities.SurveyResponse{}).Where("company_id = ?", companyID)

	if filter.SectorID != "" && filter.SectorID != "all" {
		query = query.Where("sector_id = ?", filter.SectorID)
	}
	if !filter.From.IsZero() {
		query = query.Where("completed_at >= ?", filter.From.UTC())
	}
	if !filter.To.IsZero() {
		query = query.Where("completed_at <= ?", filter.To.UTC())
	}

	if err := query.Order("completed_at ASC").Find(&responses).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar respostas: %w", err)
	}

	// Converter timestamps para horário de Brasília
	brazilLocation := utils.GetBrasilLocation()
	for i := range responses {
		responses[i].CompletedAt = responses[i].CompletedAt.In(brazilLocation)
	}

	return responses, nil
}

// CountBySector retorna o total de respostas por setor
func (r *ResponseRepository) CountBySector(ctx context.Context, companyID string) (map[string]int64, error) {
	var rows []struct {
		SectorID string
		Total    int64
	}

	err := r.db.WithContext(ctx).Model(&entities.SurveyResponse{}).
		Select("sector_id, COUNT(*) AS total").
		Where("company_id = ?", companyID).
		Group("sector_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao contar respostas: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.SectorID] = row.Total
	}
	return counts, nil
}
