package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config reúne as variáveis de ambiente da API
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	DBTimezone  string `env:"DB_TIMEZONE" envDefault:"America/Sao_Paulo"`

	DBMaxIdleConns int `env:"DB_MAX_IDLE_CONNS" envDefault:"20"`
	DBMaxOpenConns int `env:"DB_MAX_OPEN_CONNS" envDefault:"150"`

	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"http://localhost:3000"`

	// Quando vazio, o estado conhecido das probabilidades fica em memória
	RedisAddr           string        `env:"REDIS_ADDR"`
	RedisPassword       string        `env:"REDIS_PASSWORD"`
	RedisDB             int           `env:"REDIS_DB" envDefault:"0"`
	ProbabilityStateTTL time.Duration `env:"PROBABILITY_STATE_TTL" envDefault:"24h"`

	CompanyCacheTTL time.Duration `env:"COMPANY_CACHE_TTL" envDefault:"5m"`
}

// Load lê a configuração do ambiente
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler configuração: %w", err)
	}
	return cfg, nil
}

// IsProduction indica se a API roda em modo de produção
func (c *Config) IsProduction() bool {
	switch strings.ToLower(strings.TrimSpace(c.AppEnv)) {
	case "prod", "production":
		return true
	default:
		return false
	}
}

// UsesRedis indica se o estado conhecido deve ficar no Redis
func (c *Config) UsesRedis() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}
