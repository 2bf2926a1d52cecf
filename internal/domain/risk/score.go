package risk

// SeverityBucket é o nível de gravidade (1-3) de uma resposta individual
type SeverityBucket int

const (
	SeverityLow    SeverityBucket = 1
	SeverityMedium SeverityBucket = 2
	SeverityHigh   SeverityBucket = 3
)

// MaxAnswer é o maior valor bruto da escala (Nunca=0 ... Sempre=4)
const MaxAnswer = 4

// Normalize converte uma resposta bruta (0-4) em gravidade (1-3).
// Perguntas invertidas medem um fator de proteção, então o risco é 4-v.
func Normalize(value int, inverted bool) SeverityBucket {
	riskValue := value
	if inverted {
		riskValue = MaxAnswer - value
	}

	switch {
	case riskValue >= 3:
		return SeverityHigh
	case riskValue == 2:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
