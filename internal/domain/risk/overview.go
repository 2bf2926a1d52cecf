package risk

// OverviewTheme é a linha do painel geral da empresa para um tema
type OverviewTheme struct {
	Theme          int       `json:"theme"`
	Label          string    `json:"label"`
	AvgGravity     float64   `json:"avg_gravity"`
	AvgProbability float64   `json:"avg_probability"`
	Score          float64   `json:"score"`
	RiskLevel      RiskLevel `json:"risk_level"`
}

// AverageProbability é a média, entre os setores avaliados, da probabilidade
// persistida do tema. Setor sem valor para o tema conta como DefaultProbability.
func AverageProbability(sectorValues map[string]map[int]int, themeIdx int) float64 {
	if len(sectorValues) == 0 {
		return DefaultProbability
	}

	var sum int
	for _, values := range sectorValues {
		v, ok := values[themeIdx]
		if !ok || !ValidProbability(v) {
			v = DefaultProbability
		}
		sum += v
	}
	return float64(sum) / float64(len(sectorValues))
}

// CompanyOverview calcula a matriz média da empresa usada no painel do gestor.
// responses deve conter apenas respostas da empresa, de todos os setores.
func CompanyOverview(questions []Question, responses []Response, sectorValues map[string]map[int]int) []OverviewTheme {
	themes := make([]OverviewTheme, 0, ThemeCount)
	for themeIdx := 0; themeIdx < ThemeCount; themeIdx++ {
		gravity := ThemeGravity(questions, themeIdx, responses)
		prob := AverageProbability(sectorValues, themeIdx)

		themes = append(themes, OverviewTheme{
			Theme:          themeIdx,
			Label:          ThemeNames[themeIdx],
			AvgGravity:     gravity,
			AvgProbability: prob,
			Score:          Score(gravity, prob),
			RiskLevel:      Classify(gravity, prob),
		})
	}
	return themes
}
