package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageProbability(t *testing.T) {
	assert.Equal(t, 2.0, AverageProbability(nil, 0))

	sectors := map[string]map[int]int{
		"s1": {0: 4},
		"s2": {},
	}
	assert.Equal(t, 3.0, AverageProbability(sectors, 0))
	assert.Equal(t, 2.0, AverageProbability(sectors, 1))
}

func TestCompanyOverview(t *testing.T) {
	responses := []Response{{CompanyID: "c1", SectorID: "s1", Answers: map[int]int{1: 4}}}
	sectors := map[string]map[int]int{"s1": {0: 4}, "s2": {0: 2}}

	themes := CompanyOverview(Questions, responses, sectors)

	assert.Len(t, themes, ThemeCount)
	assert.Equal(t, 3.0, themes[0].AvgGravity)
	assert.Equal(t, 3.0, themes[0].AvgProbability)
	assert.Equal(t, 9.0, themes[0].Score)
	assert.Equal(t, RiskCritico, themes[0].RiskLevel)
	assert.Equal(t, RiskBaixo, themes[1].RiskLevel)
}
