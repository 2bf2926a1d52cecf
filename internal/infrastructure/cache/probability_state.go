package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
)

// MemoryProbabilityState guarda em memória o último mapa de probabilidades
// persistido de cada empresa/setor. Implementa risk.StateStore.
type MemoryProbabilityState struct {
	cache *gocache.Cache
}

// NewMemoryProbabilityState cria o store; após ttl o mapa é relido do banco
func NewMemoryProbabilityState(ttl time.Duration) *MemoryProbabilityState {
	return &MemoryProbabilityState{
		cache: gocache.New(ttl, time.Minute),
	}
}

func (s *MemoryProbabilityState) Load(_ context.Context, key string) (risk.ProbabilityMap, bool, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	m, ok := v.(risk.ProbabilityMap)
	if !ok {
		return nil, false, nil
	}
	return m.Clone(), true, nil
}

func (s *MemoryProbabilityState) Store(_ context.Context, key string, probabilities risk.ProbabilityMap) error {
	s.cache.Set(key, probabilities.Clone(), gocache.DefaultExpiration)
	return nil
}

func (s *MemoryProbabilityState) Forget(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// Close descarta os mapas guardados
func (s *MemoryProbabilityState) Close() error {
	s.cache.Flush()
	return nil
}
