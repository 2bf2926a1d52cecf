package entities

import (
	"time"

	"gorm.io/datatypes"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
)

// DiagnosticReport é uma versão do laudo técnico de uma empresa/setor.
// O histórico é append-only; apenas uma versão por escopo tem IsMain = true.
type DiagnosticReport struct {
	ID              string                                 `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	CompanyID       string                                 `json:"company_id" gorm:"column:company_id;index:idx_reports_scope"`
	SectorID        string                                 `json:"sector_id" gorm:"column:sector_id;index:idx_reports_scope"`
	Timestamp       time.Time                              `json:"timestamp" gorm:"column:timestamp"`
	Author          string                                 `json:"author" gorm:"column:author"`
	AgravosSaude    string                                 `json:"agravos_saude" gorm:"column:agravos_saude;type:text"`
	MedidasControle string                                 `json:"medidas_controle" gorm:"column:medidas_controle;type:text"`
	FontesGeradoras datatypes.JSONType[map[int]string]     `json:"fontes_geradoras" gorm:"column:fontes_geradoras"`
	AgravosPorTema  datatypes.JSONType[map[int]string]     `json:"agravos_por_tema" gorm:"column:agravos_por_tema"`
	MedidasPorTema  datatypes.JSONType[map[int]string]     `json:"medidas_por_tema" gorm:"column:medidas_por_tema"`
	Themes          datatypes.JSONType[[]risk.ThemeMetric] `json:"themes" gorm:"column:themes"`
	IsMain          bool                                   `json:"is_main" gorm:"column:is_main"`
	CreatedAt       time.Time                              `json:"created_at" gorm:"column:created_at"`
}

// NewDiagnosticReport converte o laudo montado pelo motor em entidade persistível
func NewDiagnosticReport(id string, r risk.Report) *DiagnosticReport {
	return &DiagnosticReport{
		ID:              id,
		CompanyID:       r.CompanyID,
		SectorID:        r.SectorID,
		Timestamp:       r.Timestamp,
		Author:          r.Author,
		AgravosSaude:    r.HealthEffects,
		MedidasControle: r.ControlMeasures,
		FontesGeradoras: datatypes.NewJSONType(r.Sources),
		AgravosPorTema:  datatypes.NewJSONType(r.HealthByTheme),
		MedidasPorTema:  datatypes.NewJSONType(r.MeasuresByTheme),
		Themes:          datatypes.NewJSONType(r.Themes),
		IsMain:          r.IsMain,
	}
}
