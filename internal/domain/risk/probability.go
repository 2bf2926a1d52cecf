package risk

const (
	// DefaultProbability é a probabilidade da visão agregada
	DefaultProbability = 2
	MinProbability     = 1
	MaxProbability     = 4
)

// ProbabilitySource descreve de onde veio o valor de probabilidade
type ProbabilitySource string

const (
	SourceAggregate ProbabilitySource = "aggregate"
	SourceManual    ProbabilitySource = "manual"
	SourceDerived   ProbabilitySource = "derived"
)

// Probability é o valor resolvido para um tema junto com sua origem
type Probability struct {
	Value  int               `json:"value"`
	Source ProbabilitySource `json:"source"`
}

// Overrides são as probabilidades definidas pelo RT, por índice de tema
type Overrides map[int]int

// ValidProbability indica se o valor está em [1,4]
func ValidProbability(p int) bool {
	return p >= MinProbability && p <= MaxProbability
}

// DeriveProbability sugere a probabilidade a partir da gravidade média
func DeriveProbability(gravity float64) int {
	switch {
	case gravity <= 2:
		return 2
	case gravity <= 3:
		return 3
	default:
		return 4
	}
}

// ResolveProbability aplica a precedência: visão geral > RT > derivada da gravidade.
// As overrides devem vir de uma leitura atual do armazenamento em cada passagem.
func ResolveProbability(sectorID string, overrides Overrides, themeIdx int, gravity float64) Probability {
	if IsAggregate(sectorID) {
		return Probability{Value: DefaultProbability, Source: SourceAggregate}
	}

	if v, ok := overrides[themeIdx]; ok && ValidProbability(v) {
		return Probability{Value: v, Source: SourceManual}
	}

	return Probability{Value: DeriveProbability(gravity), Source: SourceDerived}
}
