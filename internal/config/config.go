// Package config は環境変数からアプリケーション設定を読み込む。
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Database
	DatabaseURL       string        `env:"DATABASE_URL,required,notEmpty"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS"     envDefault:"20"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS"     envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME"  envDefault:"30m"`

	// Server
	ServerPort   string `env:"SERVER_PORT"    envDefault:"8080"`
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"16384"`

	// CORS
	CORSAllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`

	// Rate Limit（req/min/client）
	RateLimitGeneral int `env:"RATE_LIMIT_GENERAL" envDefault:"120"`
	RateLimitLogin   int `env:"RATE_LIMIT_LOGIN"   envDefault:"10"`

	// Session
	// 0の場合は定期的な再構築を行わない（SIGHUPでの再構築のみ）。
	// 再構築のたびに全トークンが再発行されるため、全クライアントは間隔ごとに再ログインが必要になる。
	SessionReloadInterval time.Duration `env:"SESSION_RELOAD_INTERVAL" envDefault:"0s"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load は環境変数からConfigを読み込む。
// 必須環境変数が未設定、または値が不正な場合はエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.MaxBodyBytes <= 0:
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	case c.RateLimitGeneral <= 0:
		return fmt.Errorf("RATE_LIMIT_GENERAL must be positive, got %d", c.RateLimitGeneral)
	case c.RateLimitLogin <= 0:
		return fmt.Errorf("RATE_LIMIT_LOGIN must be positive, got %d", c.RateLimitLogin)
	case c.SessionReloadInterval < 0:
		return fmt.Errorf("SESSION_RELOAD_INTERVAL must not be negative, got %s", c.SessionReloadInterval)
	}
	return nil
}
