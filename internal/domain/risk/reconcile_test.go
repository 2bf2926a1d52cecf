package risk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	calls   int
	err     error
	written map[string]ProbabilityMap
}

func (w *fakeWriter) WriteProbabilities(_ context.Context, scope Scope, m ProbabilityMap) error {
	w.calls++
	if w.err != nil {
		return w.err
	}
	if w.written == nil {
		w.written = make(map[string]ProbabilityMap)
	}
	w.written[scope.Key()] = m.Clone()
	return nil
}

type fakeLoader struct {
	calls     int
	persisted ProbabilityMap
	err       error
}

func (l *fakeLoader) LoadProbabilities(_ context.Context, _ Scope) (ProbabilityMap, error) {
	l.calls++
	return l.persisted.Clone(), l.err
}

type mapState struct {
	items map[string]ProbabilityMap
}

func newMapState() *mapState {
	return &mapState{items: make(map[string]ProbabilityMap)}
}

func (s *mapState) Load(_ context.Context, key string) (ProbabilityMap, bool, error) {
	m, ok := s.items[key]
	return m.Clone(), ok, nil
}

func (s *mapState) Store(_ context.Context, key string, m ProbabilityMap) error {
	s.items[key] = m.Clone()
	return nil
}

func (s *mapState) Forget(_ context.Context, key string) error {
	delete(s.items, key)
	return nil
}

func derivedMap(values ...int) ProbabilityMap {
	m := make(ProbabilityMap, len(values))
	for i, v := range values {
		m[i] = Probability{Value: v, Source: SourceDerived}
	}
	return m
}

func TestReconcile_WritesOnceThenIdle(t *testing.T) {
	ctx := context.Background()
	writer := &fakeWriter{}
	loader := &fakeLoader{persisted: ProbabilityMap{}}
	r := NewReconciler(writer, loader, newMapState())
	scope := Scope{CompanyID: "c1", SectorID: "s1"}
	computed := derivedMap(2, 2, 3, 2, 4, 2, 2, 2, 3)

	first, err := r.Reconcile(ctx, scope, computed)
	require.NoError(t, err)
	assert.True(t, first.Written)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, first.Changed)
	assert.Equal(t, 1, writer.calls)

	second, err := r.Reconcile(ctx, scope, computed.Clone())
	require.NoError(t, err)
	assert.False(t, second.Written)
	assert.Empty(t, second.Changed)
	assert.Equal(t, 1, writer.calls)
	assert.Equal(t, 1, loader.calls)
}

func TestReconcile_WritesFullMapOnSingleChange(t *testing.T) {
	ctx := context.Background()
	writer := &fakeWriter{}
	r := NewReconciler(writer, &fakeLoader{persisted: derivedMap(2, 2, 2)}, newMapState())
	scope := Scope{CompanyID: "c1", SectorID: "s1"}

	res, err := r.Reconcile(ctx, scope, derivedMap(2, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Changed)
	assert.Len(t, writer.written[scope.Key()], 3)
}

func TestReconcile_NoWriteWhenPersistedMatches(t *testing.T) {
	writer := &fakeWriter{}
	loader := &fakeLoader{persisted: ProbabilityMap{0: {Value: 3, Source: SourceManual}}}
	r := NewReconciler(writer, loader, newMapState())

	// origem diferente, mesmo valor
	res, err := r.Reconcile(context.Background(), Scope{CompanyID: "c1", SectorID: "s1"}, derivedMap(3))
	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.Equal(t, 0, writer.calls)
}

func TestReconcile_FailedWriteKeepsKnownState(t *testing.T) {
	ctx := context.Background()
	writer := &fakeWriter{err: errors.New("timeout")}
	state := newMapState()
	r := NewReconciler(writer, &fakeLoader{persisted: derivedMap(2)}, state)
	scope := Scope{CompanyID: "c1", SectorID: "s1"}

	res, err := r.Reconcile(ctx, scope, derivedMap(4))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStalePersistedState)
	assert.False(t, res.Written)
	assert.Equal(t, 2, state.items[scope.Key()][0].Value)

	// próxima passagem tenta o mesmo diff
	writer.err = nil
	res, err = r.Reconcile(ctx, scope, derivedMap(4))
	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.Equal(t, []int{0}, res.Changed)
	assert.Equal(t, 2, writer.calls)
	assert.Equal(t, 4, state.items[scope.Key()][0].Value)
}

func TestReconcile_SkipsAggregateView(t *testing.T) {
	writer := &fakeWriter{}
	loader := &fakeLoader{}
	r := NewReconciler(writer, loader, newMapState())

	res, err := r.Reconcile(context.Background(), Scope{CompanyID: "c1", SectorID: AllSectors}, derivedMap(2))
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, 0, writer.calls)
	assert.Equal(t, 0, loader.calls)
}

func TestReconcile_LoaderError(t *testing.T) {
	writer := &fakeWriter{}
	r := NewReconciler(writer, &fakeLoader{err: errors.New("db down")}, newMapState())

	_, err := r.Reconcile(context.Background(), Scope{CompanyID: "c1", SectorID: "s1"}, derivedMap(2))
	require.Error(t, err)
	assert.Equal(t, 0, writer.calls)
}

func TestReconcile_ForgetReloads(t *testing.T) {
	ctx := context.Background()
	loader := &fakeLoader{persisted: derivedMap(2)}
	r := NewReconciler(&fakeWriter{}, loader, newMapState())
	scope := Scope{CompanyID: "c1", SectorID: "s1"}

	_, err := r.Reconcile(ctx, scope, derivedMap(2))
	require.NoError(t, err)
	require.NoError(t, r.Forget(ctx, scope))
	_, err = r.Reconcile(ctx, scope, derivedMap(2))
	require.NoError(t, err)

	assert.Equal(t, 2, loader.calls)
}

func TestDiff(t *testing.T) {
	assert.Empty(t, Diff(derivedMap(1, 2), derivedMap(1, 2)))
	assert.Equal(t, []int{1}, Diff(derivedMap(1, 2), derivedMap(1, 3)))
	assert.Equal(t, []int{1}, Diff(derivedMap(1, 2), derivedMap(1)))
	assert.Equal(t, []int{1}, Diff(derivedMap(1), derivedMap(1, 2)))
	assert.Equal(t, []int{0, 1}, Diff(derivedMap(1, 2), nil))
}

type failingStoreState struct {
	*mapState
	forgotten []string
}

func (s *failingStoreState) Store(_ context.Context, _ string, _ ProbabilityMap) error {
	return errors.New("redis indisponível")
}

func (s *failingStoreState) Forget(ctx context.Context, key string) error {
	s.forgotten = append(s.forgotten, key)
	return s.mapState.Forget(ctx, key)
}

func TestReconcile_StateFailureAfterWrite(t *testing.T) {
	ctx := context.Background()
	writer := &fakeWriter{}
	state := &failingStoreState{mapState: newMapState()}
	scope := Scope{CompanyID: "c1", SectorID: "s1"}
	state.items[scope.Key()] = derivedMap(2)
	r := NewReconciler(writer, &fakeLoader{persisted: derivedMap(2)}, state)

	res, err := r.Reconcile(ctx, scope, derivedMap(4))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKnownStateNotUpdated)
	assert.NotErrorIs(t, err, ErrStalePersistedState)
	assert.True(t, res.Written)
	assert.Equal(t, 4, writer.written[scope.Key()][0].Value)

	// o escopo é descartado para ser relido do banco
	assert.Equal(t, []string{scope.Key()}, state.forgotten)
	_, ok := state.items[scope.Key()]
	assert.False(t, ok)
}
