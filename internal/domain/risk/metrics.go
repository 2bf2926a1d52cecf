package risk

// ThemeMetric é o resultado calculado de um tema para a seleção empresa/setor
type ThemeMetric struct {
	Theme       int               `json:"theme"`
	Label       string            `json:"label"`
	AvgGravity  float64           `json:"avg_gravity"`
	Probability int               `json:"probability"`
	Source      ProbabilitySource `json:"probability_source"`
	RiskLevel   RiskLevel         `json:"risk_level"`
}

// ComputeThemeMetrics executa agregação, resolução de probabilidade e classificação
// para os 9 temas. responses já deve estar filtrado por empresa/setor.
func ComputeThemeMetrics(questions []Question, sectorFilter string, responses []Response, overrides Overrides) []ThemeMetric {
	metrics := make([]ThemeMetric, 0, ThemeCount)
	for themeIdx := 0; themeIdx < ThemeCount; themeIdx++ {
		gravity := ThemeGravity(questions, themeIdx, responses)
		prob := ResolveProbability(sectorFilter, overrides, themeIdx, gravity)

		metrics = append(metrics, ThemeMetric{
			Theme:       themeIdx,
			Label:       ThemeNames[themeIdx],
			AvgGravity:  gravity,
			Probability: prob.Value,
			Source:      prob.Source,
			RiskLevel:   Classify(gravity, float64(prob.Value)),
		})
	}
	return metrics
}

// ProbabilitiesOf extrai o mapa de probabilidades calculadas, por tema
func ProbabilitiesOf(metrics []ThemeMetric) ProbabilityMap {
	m := make(ProbabilityMap, len(metrics))
	for _, tm := range metrics {
		m[tm.Theme] = Probability{Value: tm.Probability, Source: tm.Source}
	}
	return m
}
