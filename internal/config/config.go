package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config reúne as configurações da API, lidas do ambiente (e de um .env opcional)
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	LogMode string `env:"LOG_MODE" envDefault:"development"`

	// Sem DATABASE_URL os dados ficam apenas em memória, a partir do seed
	DatabaseURL    string `env:"DATABASE_URL"`
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"postgres"`

	StoreReadLatency  time.Duration `env:"STORE_READ_LATENCY" envDefault:"100ms"`
	StoreWriteLatency time.Duration `env:"STORE_WRITE_LATENCY" envDefault:"200ms"`

	// Sem REDIS_ADDR sessões e eventos ficam em memória
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"0s"`
	AnalyticsStream string        `env:"ANALYTICS_STREAM" envDefault:"analytics:events"`

	// Eventos guardados em memória quando não há Redis
	AnalyticsBuffer int `env:"ANALYTICS_BUFFER" envDefault:"1000"`

	ChatTTL     time.Duration `env:"CHAT_TTL" envDefault:"30m"`
	CORSOrigins string        `env:"CORS_ORIGINS" envDefault:"http://localhost:3000, http://localhost:5173"`
	InvestURL   string        `env:"INVEST_URL" envDefault:"https://www.xpi.com.br"`
}

// Load carrega os arquivos .env informados (ou ".env") e faz o parse do ambiente
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(cfg.DatabaseDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.DatabaseDriver != DriverPostgres && c.DatabaseDriver != DriverSQLite {
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DatabaseDriver)
	}
	if c.StoreReadLatency < 0 || c.StoreWriteLatency < 0 {
		return errors.New("store latency must not be negative")
	}
	return nil
}

// UsesDatabase indica se o backend durável (GORM) deve ser usado
func (c Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

func (c Config) UsesRedis() bool {
	return c.RedisAddr != ""
}
