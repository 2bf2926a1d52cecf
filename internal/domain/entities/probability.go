package entities

import (
	"time"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
)

// Origem persistida de uma probabilidade
const (
	ProbabilitySourceManual = "manual"
	ProbabilitySourceAuto   = "auto"
)

// ProbabilityAssessment é a probabilidade (1-4) de um tema para uma empresa/setor.
// Existe no máximo uma linha por (empresa, setor, tema).
type ProbabilityAssessment struct {
	ID        uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	CompanyID string    `json:"company_id" gorm:"column:company_id;uniqueIndex:idx_probability_scope"`
	SectorID  string    `json:"sector_id" gorm:"column:sector_id;uniqueIndex:idx_probability_scope"`
	ThemeIdx  int       `json:"theme" gorm:"column:theme_idx;uniqueIndex:idx_probability_scope"`
	Value     int       `json:"value" gorm:"column:value"`
	Source    string    `json:"source" gorm:"column:source;default:auto"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// IsManual indica se o valor foi definido pelo RT
func (p ProbabilityAssessment) IsManual() bool {
	return p.Source == ProbabilitySourceManual
}

// ToProbabilityMap converte as linhas persistidas para o mapa do motor
func ToProbabilityMap(rows []ProbabilityAssessment) risk.ProbabilityMap {
	m := make(risk.ProbabilityMap, len(rows))
	for _, row := range rows {
		source := risk.SourceDerived
		if row.IsManual() {
			source = risk.SourceManual
		}
		m[row.ThemeIdx] = risk.Probability{Value: row.Value, Source: source}
	}
	return m
}

// ToOverrides extrai apenas os valores definidos pelo RT
func ToOverrides(rows []ProbabilityAssessment) risk.Overrides {
	overrides := make(risk.Overrides)
	for _, row := range rows {
		if row.IsManual() {
			overrides[row.ThemeIdx] = row.Value
		}
	}
	return overrides
}
