package entities

import (
	"crypto/md5"
	"encoding/json"
	"fmt"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
)

// CompanyDashboard representa o painel consolidado da empresa
type CompanyDashboard struct {
	CompanyID         string               `json:"company_id"`
	NomeFantasia      string               `json:"nome_fantasia"`
	Status            CompanyStatus        `json:"status"`
	TotalResponses    int64                `json:"total_responses"`
	TotalEmployees    int                  `json:"total_employees"`
	Participation     float64              `json:"participation"` // Percentual de colaboradores que responderam
	ResponsesBySector map[string]int64     `json:"responses_by_sector"`
	Themes            []risk.OverviewTheme `json:"themes"`
	ETag              string               `json:"-"` // Campo interno para geração de ETag
}

// CalculateETag gera um hash único para identificar a versão dos dados
func (d *CompanyDashboard) CalculateETag() string {
	data, _ := json.Marshal(d)
	hash := md5.Sum(data)
	d.ETag = fmt.Sprintf("%x", hash)
	return d.ETag
}

// ParticipationRate retorna o percentual de respostas sobre o total de colaboradores
func ParticipationRate(responses int64, employees int) float64 {
	if employees <= 0 {
		return 0
	}
	return float64(responses) * 100 / float64(employees)
}
