package risk

import "time"

// AllSectors identifica a visão agregada de todos os setores da empresa
const AllSectors = "all"

// DefaultGravity é a gravidade usada quando o tema não tem respostas
const DefaultGravity = 1.0

// Response é a visão imutável de um questionário respondido usada pelo motor
type Response struct {
	CompanyID   string
	SectorID    string
	JobFunction string
	CompletedAt time.Time
	Answers     map[int]int
}

// IsAggregate indica se o filtro de setor representa a visão geral
func IsAggregate(sectorFilter string) bool {
	return sectorFilter == "" || sectorFilter == AllSectors
}

// FilterResponses seleciona as respostas da empresa e, opcionalmente, do setor.
// O slice de entrada não é modificado.
func FilterResponses(responses []Response, companyID, sectorFilter string) []Response {
	filtered := make([]Response, 0, len(responses))
	for _, r := range responses {
		if r.CompanyID != companyID {
			continue
		}
		if !IsAggregate(sectorFilter) && r.SectorID != sectorFilter {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// ThemeGravity calcula a gravidade média (sem arredondamento) de um tema sobre
// todos os pares (pergunta do tema, resposta) que possuem valor.
func ThemeGravity(questions []Question, themeIdx int, responses []Response) float64 {
	var sum, count int
	for _, q := range ThemeQuestions(questions, themeIdx) {
		for _, r := range responses {
			v, ok := r.Answers[q.ID]
			if !ok {
				continue
			}
			sum += int(Normalize(v, q.Inverted))
			count++
		}
	}

	if count == 0 {
		return DefaultGravity
	}
	return float64(sum) / float64(count)
}
