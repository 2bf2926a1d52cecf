package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
)

const redisKeyPrefix = "nr01:probabilities:"

// RedisProbabilityState compartilha o estado conhecido entre instâncias da API
type RedisProbabilityState struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisProbabilityState conecta ao Redis e valida a conexão com PING
func NewRedisProbabilityState(addr, password string, db int, ttl time.Duration) (*RedisProbabilityState, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisProbabilityState{rdb: rdb, ttl: ttl}, nil
}

func (s *RedisProbabilityState) Load(ctx context.Context, key string) (risk.ProbabilityMap, bool, error) {
	raw, err := s.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var m risk.ProbabilityMap
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false, fmt.Errorf("estado de probabilidades inválido: %w", err)
	}
	return m, true, nil
}

func (s *RedisProbabilityState) Store(ctx context.Context, key string, probabilities risk.ProbabilityMap) error {
	raw, err := json.Marshal(probabilities)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKeyPrefix+key, raw, s.ttl).Err()
}

func (s *RedisProbabilityState) Forget(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+key).Err()
}

func (s *RedisProbabilityState) Close() error {
	return s.rdb.Close()
}
