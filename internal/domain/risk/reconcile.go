package risk

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrStalePersistedState indica que a gravação das probabilidades falhou e o
// estado conhecido foi mantido para nova tentativa na próxima passagem.
var ErrStalePersistedState = errors.New("probabilidades persistidas desatualizadas")

// ErrKnownStateNotUpdated indica que o mapa foi gravado mas o estado conhecido
// não pôde ser atualizado. Os dados estão persistidos; o escopo é descartado do
// estado para que a próxima passagem releia do banco.
var ErrKnownStateNotUpdated = errors.New("estado conhecido não atualizado")

// Scope identifica o mapa de probabilidades de uma empresa/setor
type Scope struct {
	CompanyID string
	SectorID  string
}

// Key retorna a chave estável do escopo
func (s Scope) Key() string {
	return s.CompanyID + ":" + s.SectorID
}

// ProbabilityMap guarda a probabilidade de cada tema de um escopo
type ProbabilityMap map[int]Probability

// Clone retorna uma cópia independente do mapa
func (m ProbabilityMap) Clone() ProbabilityMap {
	if m == nil {
		return nil
	}
	out := make(ProbabilityMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Values retorna apenas os valores inteiros por tema
func (m ProbabilityMap) Values() map[int]int {
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v.Value
	}
	return out
}

// Diff retorna, em ordem crescente, os temas cujo valor difere entre os mapas.
// A comparação é por valor; a origem não é considerada.
func Diff(computed, persisted ProbabilityMap) []int {
	changed := make([]int, 0)
	for theme, p := range computed {
		old, ok := persisted[theme]
		if !ok || old.Value != p.Value {
			changed = append(changed, theme)
		}
	}
	for theme := range persisted {
		if _, ok := computed[theme]; !ok {
			changed = append(changed, theme)
		}
	}
	sort.Ints(changed)
	return changed
}

// ProbabilityWriter substitui o mapa completo persistido de um escopo
type ProbabilityWriter interface {
	WriteProbabilities(ctx context.Context, scope Scope, probabilities ProbabilityMap) error
}

// PersistedLoader lê o mapa persistido quando o estado conhecido não está disponível
type PersistedLoader interface {
	LoadProbabilities(ctx context.Context, scope Scope) (ProbabilityMap, error)
}

// StateStore guarda o último mapa sabidamente persistido de cada escopo
type StateStore interface {
	Load(ctx context.Context, key string) (ProbabilityMap, bool, error)
	Store(ctx context.Context, key string, probabilities ProbabilityMap) error
	Forget(ctx context.Context, key string) error
}

// ReconcileResult descreve o resultado de uma passagem de reconciliação
type ReconcileResult struct {
	CompanyID string `json:"company_id"`
	SectorID  string `json:"sector_id"`
	Changed   []int  `json:"changed_themes"`
	Written   bool   `json:"written"`
	Skipped   bool   `json:"skipped"`
}

// Reconciler grava o mapa calculado somente quando ele difere do persistido
type Reconciler struct {
	writer ProbabilityWriter
	loader PersistedLoader
	state  StateStore
}

// NewReconciler cria um Reconciler
func NewReconciler(writer ProbabilityWriter, loader PersistedLoader, state StateStore) *Reconciler {
	return &Reconciler{
		writer: writer,
		loader: loader,
		state:  state,
	}
}

// Reconcile compara o mapa calculado com o último persistido e grava o mapa
// completo apenas se houver diferença. Em falha de gravação o estado conhecido
// não é alterado, então a próxima passagem tenta o mesmo diff.
func (r *Reconciler) Reconcile(ctx context.Context, scope Scope, computed ProbabilityMap) (ReconcileResult, error) {
	result := ReconcileResult{
		CompanyID: scope.CompanyID,
		SectorID:  scope.SectorID,
		Changed:   []int{},
	}

	// a visão geral nunca é persistida
	if IsAggregate(scope.SectorID) {
		result.Skipped = true
		return result, nil
	}

	known, err := r.known(ctx, scope)
	if err != nil {
		return result, err
	}

	result.Changed = Diff(computed, known)
	if len(result.Changed) == 0 {
		return result, nil
	}

	snapshot := computed.Clone()
	if err := r.writer.WriteProbabilities(ctx, scope, snapshot); err != nil {
		return result, fmt.Errorf("%w: %v", ErrStalePersistedState, err)
	}
	result.Written = true

	if err := r.state.Store(ctx, scope.Key(), snapshot); err != nil {
		_ = r.state.Forget(ctx, scope.Key())
		return result, fmt.Errorf("%w: %v", ErrKnownStateNotUpdated, err)
	}
	return result, nil
}

// Forget descarta o estado conhecido de um escopo, forçando nova leitura
func (r *Reconciler) Forget(ctx context.Context, scope Scope) error {
	return r.state.Forget(ctx, scope.Key())
}

func (r *Reconciler) known(ctx context.Context, scope Scope) (ProbabilityMap, error) {
	if m, ok, err := r.state.Load(ctx, scope.Key()); err == nil && ok {
		return m, nil
	}

	persisted, err := r.loader.LoadProbabilities(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar probabilidades persistidas: %w", err)
	}
	// falha ao guardar só custa uma nova leitura na próxima passagem
	_ = r.state.Store(ctx, scope.Key(), persisted)
	return persisted, nil
}
