package risk

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidSectorSelection é retornado ao tentar salvar um laudo da visão geral
var ErrInvalidSectorSelection = errors.New("selecione um setor específico para salvar o laudo")

// DefaultAuthor é o autor usado quando o nome do RT não foi informado
const DefaultAuthor = "RT"

// annotationSeparator une os textos dos temas em agravos e medidas
const annotationSeparator = "; "

// ThemeAnnotation são os textos técnicos do RT para um tema
type ThemeAnnotation struct {
	Source          string `json:"fonte_geradora"`
	HealthEffects   string `json:"agravos_saude"`
	ControlMeasures string `json:"medidas_controle"`
}

// Annotations indexa as anotações por índice de tema
type Annotations map[int]ThemeAnnotation

// Report é o snapshot imutável do laudo de uma empresa/setor.
// É o formato entregue à persistência e à impressão.
type Report struct {
	CompanyID       string         `json:"company_id"`
	SectorID        string         `json:"sector_id"`
	Timestamp       time.Time      `json:"timestamp"`
	Author          string         `json:"author"`
	HealthEffects   string         `json:"agravos_saude"`
	ControlMeasures string         `json:"medidas_controle"`
	Sources         map[int]string `json:"fontes_geradoras"`
	HealthByTheme   map[int]string `json:"agravos_por_tema"`
	MeasuresByTheme map[int]string `json:"medidas_por_tema"`
	Themes          []ThemeMetric  `json:"themes"`
	IsMain          bool           `json:"is_main"`
}

// AssembleReport monta o laudo a partir das métricas calculadas e das anotações
func AssembleReport(scope Scope, metrics []ThemeMetric, annotations Annotations, reviewer string, now time.Time) (Report, error) {
	if IsAggregate(scope.SectorID) {
		return Report{}, ErrInvalidSectorSelection
	}

	author := strings.TrimSpace(reviewer)
	if author == "" {
		author = DefaultAuthor
	}

	sources := make(map[int]string)
	health := make(map[int]string)
	measures := make(map[int]string)
	var healthParts, measureParts []string

	for themeIdx := 0; themeIdx < ThemeCount; themeIdx++ {
		a, ok := annotations[themeIdx]
		if !ok {
			continue
		}
		if s := strings.TrimSpace(a.Source); s != "" {
			sources[themeIdx] = s
		}
		if s := strings.TrimSpace(a.HealthEffects); s != "" {
			health[themeIdx] = s
			healthParts = append(healthParts, s)
		}
		if s := strings.TrimSpace(a.ControlMeasures); s != "" {
			measures[themeIdx] = s
			measureParts = append(measureParts, s)
		}
	}

	themes := make([]ThemeMetric, len(metrics))
	copy(themes, metrics)

	return Report{
		CompanyID:       scope.CompanyID,
		SectorID:        scope.SectorID,
		Timestamp:       now,
		Author:          author,
		HealthEffects:   strings.Join(healthParts, annotationSeparator),
		ControlMeasures: strings.Join(measureParts, annotationSeparator),
		Sources:         sources,
		HealthByTheme:   health,
		MeasuresByTheme: measures,
		Themes:          themes,
		IsMain:          true,
	}, nil
}
