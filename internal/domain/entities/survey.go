package entities

import (
	"time"

	"gorm.io/datatypes"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
)

// SurveyResponse representa um questionário respondido por um colaborador.
// É imutável depois de criado.
type SurveyResponse struct {
	ID          string                          `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	CompanyID   string                          `json:"company_id" gorm:"column:company_id;index:idx_responses_scope"`
	SectorID    string                          `json:"sector_id" gorm:"column:sector_id;index:idx_responses_scope"`
	JobFunction string                          `json:"job_function" gorm:"column:job_function"`
	CompletedAt time.Time                       `json:"completed_at" gorm:"column:completed_at;index"`
	Answers     datatypes.JSONType[map[int]int] `json:"answers" gorm:"column:answers"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}

// ToRisk converte a entidade para a visão usada pelo motor de risco
func (r SurveyResponse) ToRisk() risk.Response {
	return risk.Response{
		CompanyID:   r.CompanyID,
		SectorID:    r.SectorID,
		JobFunction: r.JobFunction,
		CompletedAt: r.CompletedAt,
		Answers:     r.Answers.Data(),
	}
}

// ToRiskResponses converte uma lista de entidades
func ToRiskResponses(responses []SurveyResponse) []risk.Response {
	out := make([]risk.Response, 0, len(responses))
	for _, r := range responses {
		out = append(out, r.ToRisk())
	}
	return out
}
