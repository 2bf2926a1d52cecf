package risk

// RiskLevel é o resultado da matriz Gravidade x Probabilidade da NR-01
type RiskLevel string

const (
	RiskBaixo   RiskLevel = "Baixo"
	RiskMedio   RiskLevel = "Médio"
	RiskAlto    RiskLevel = "Alto"
	RiskCritico RiskLevel = "Crítico"
)

// Rank retorna a posição ordinal do nível (Baixo=1 ... Crítico=4), 0 se desconhecido
func (l RiskLevel) Rank() int {
	switch l {
	case RiskBaixo:
		return 1
	case RiskMedio:
		return 2
	case RiskAlto:
		return 3
	case RiskCritico:
		return 4
	default:
		return 0
	}
}

// Score multiplica gravidade (1-3) e probabilidade (1-4) após limitar os dois aos intervalos
func Score(gravity, probability float64) float64 {
	return clamp(gravity, 1, 3) * clamp(probability, MinProbability, MaxProbability)
}

// Classify classifica o produto G x P (1 a 12):
//
//	<= 2.5 Baixo, <= 5.5 Médio, <= 8.5 Alto, acima disso Crítico
func Classify(gravity, probability float64) RiskLevel {
	score := Score(gravity, probability)

	switch {
	case score <= 2.5:
		return RiskBaixo
	case score <= 5.5:
		return RiskMedio
	case score <= 8.5:
		return RiskAlto
	default:
		return RiskCritico
	}
}

func clamp(v, lo, hi float64) float64 {
	// NaN cai no limite inferior
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
