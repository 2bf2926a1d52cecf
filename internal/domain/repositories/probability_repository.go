package repositories

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
)

type IProbabilityRepository interface {
	risk.ProbabilityWriter
	risk.PersistedLoader
	FindByScope(ctx context.Context, companyID, sectorID string) ([]entities.ProbabilityAssessment, error)
	FindByCompany(ctx context.Context, companyID string) ([]entities.ProbabilityAssessment, error)
	SetOverride(ctx context.Context, companyID, sectorID string, themeIdx, value int) error
	ClearOverride(ctx context.Context, companyID, sectorID string, themeIdx int) error
}

type ProbabilityRepository struct {
	db *gorm.DB
}

func NewProbabilityRepository(db *gorm.DB) *ProbabilityRepository {
	return &ProbabilityRepository{
		db: db,
	}
}

var probabilityConflictColumns = []clause.Column{{Name: "company_id"}, {Name: "sector_id"}, {Name: "theme_idx"}}

func (r *ProbabilityRepository) FindByScope(ctx context.Context, companyID, sectorID string) ([]entities.ProbabilityAssessment, error) {
	var rows []entities.ProbabilityAssessment
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND sector_id = ?", companyID, sectorID).
		Order("theme_idx ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar probabilidades: %w", err)
	}
	return rows, nil
}

func (r *ProbabilityRepository) FindByCompany(ctx context.Context, companyID string) ([]entities.ProbabilityAssessment, error) {
	var rows []entities.ProbabilityAssessment
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("sector_id ASC, theme_idx ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar probabilidades: %w", err)
	}
	return rows, nil
}

// LoadProbabilities retorna o mapa persistido de um escopo
func (r *ProbabilityRepository) LoadProbabilities(ctx context.Context, scope risk.Scope) (risk.ProbabilityMap, error) {
	rows, err := r.FindByScope(ctx, scope.CompanyID, scope.SectorID)
	if err != nil {
		return nil, err
	}
	return entities.ToProbabilityMap(rows), nil
}

// WriteProbabilities grava os valores derivados do escopo.
// Entradas manuais são ignoradas e linhas manuais existentes nunca são sobrescritas.
func (r *ProbabilityRepository) WriteProbabilities(ctx context.Context, scope risk.Scope, m risk.ProbabilityMap) error {
	themes := make([]int, 0, len(m))
	for themeIdx, p := range m {
		if p.Source == risk.SourceManual || !risk.ValidTheme(themeIdx) || !risk.ValidProbability(p.Value) {
			continue
		}
		themes = append(themes, themeIdx)
	}
	if len(themes) == 0 {
		return nil
	}
	sort.Ints(themes)

	rows := make([]entities.ProbabilityAssessment, 0, len(themes))
	for _, themeIdx := range themes {
		rows = append(rows, entities.ProbabilityAssessment{
			CompanyID: scope.CompanyID,
			SectorID:  scope.SectorID,
			ThemeIdx:  themeIdx,
			Value:     m[themeIdx].Value,
			Source:    entities.ProbabilitySourceAuto,
		})
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   probabilityConflictColumns,
		DoUpdates: clause.AssignmentColumns([]string{"value", "source", "updated_at"}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: clause.Column{Table: "probability_assessments", Name: "source"}, Value: entities.ProbabilitySourceAuto},
		}},
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("erro ao gravar probabilidades de %s: %w", scope.Key(), err)
	}
	return nil
}

// SetOverride grava um valor definido pelo RT
func (r *ProbabilityRepository) SetOverride(ctx context.Context, companyID, sectorID string, themeIdx, value int) error {
	row := entities.ProbabilityAssessment{
		CompanyID: companyID,
		SectorID:  sectorID,
		ThemeIdx:  themeIdx,
		Value:     value,
		Source:    entities.ProbabilitySourceManual,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   probabilityConflictColumns,
		DoUpdates: clause.AssignmentColumns([]string{"value", "source", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("erro ao gravar probabilidade manual: %w", err)
	}
	return nil
}

// ClearOverride remove o valor manual; a próxima reconciliação grava o derivado
func (r *ProbabilityRepository) ClearOverride(ctx context.Context, companyID, sectorID string, themeIdx int) error {
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND sector_id = ? AND theme_idx = ? AND source = ?",
			companyID, sectorID, themeIdx, entities.ProbabilitySourceManual).
		Delete(&entities.ProbabilityAssessment{}).Error
	if err != nil {
		return fmt.Errorf("erro ao remover probabilidade manual: %w", err)
	}
	return nil
}
