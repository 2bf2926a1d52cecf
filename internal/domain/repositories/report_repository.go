package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
	"github.com/PavaniTiago/nr01-risk-api/internal/utils"
)

type IReportRepository interface {
	Append(ctx context.Context, report *entities.DiagnosticReport) error
	FindCurrent(ctx context.Context, companyID, sectorID string) (*entities.DiagnosticReport, error)
	History(ctx context.Context, companyID, sectorID string) ([]entities.DiagnosticReport, error)
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// Append grava uma nova versão e a torna a vigente do escopo
func (r *ReportRepository) Append(ctx context.Context, report *entities.DiagnosticReport) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.DiagnosticReport{}).
			Where("company_id = ? AND sector_id = ? AND is_main = ?", report.CompanyID, report.SectorID, true).
			Update("is_main", false).Error; err != nil {
			return err
		}
		report.IsMain = true
		return tx.Create(report).Error
	})
	if err != nil {
		return fmt.Errorf("erro ao salvar laudo: %w", err)
	}
	return nil
}

func (r *ReportRepository) FindCurrent(ctx context.Context, companyID, sectorID string) (*entities.DiagnosticReport, error) {
	var report entities.DiagnosticReport
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND sector_id = ? AND is_main = ?", companyID, sectorID, true).
		Order("timestamp DESC").
		First(&report).Error
	if err != nil {
		return nil, notFound(err)
	}
	report.Timestamp = report.Timestamp.In(utils.GetBrasilLocation())
	return &report, nil
}

// History lista as versões do laudo, mais recentes primeiro.
// sectorID vazio lista todos os setores da empresa.
func (r *ReportRepository) History(ctx context.Context, companyID, sectorID string) ([]entities.DiagnosticReport, error) {
	var reports []entities.DiagnosticReport

	query := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if sectorID != "" {
		query = query.Where("sector_id = ?", sectorID)
	}

	if err := query.Order("timestamp DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico de laudos: %w", err)
	}

	brazilLocation := utils.GetBrasilLocation()
	for i := range reports {
		reports[i].Timestamp = reports[i].Timestamp.In(brazilLocation)
	}
	return reports, nil
}
