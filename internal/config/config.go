// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings 程序啟動時載入一次的組態，之後不再變動
type Settings struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	RedisAddr     string `env:"REDIS_ADDR,required,notEmpty"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret       string `env:"JWT_SECRET_KEY,required,notEmpty"`
	JWTAlgorithm    string `env:"JWT_ALGORITHM" envDefault:"HS256"`
	AccessTokenTTLM int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"60"`

	WorkerCount int    `env:"WORKER_COUNT" envDefault:"1"`
	ListenAddr  string `env:"LISTEN_ADDR" envDefault:":8080"`
}

// AccessTokenTTL 回傳預設的存取令牌有效時間
func (s Settings) AccessTokenTTL() time.Duration {
	return time.Duration(s.AccessTokenTTLM) * time.Minute
}

// Load 解析環境變數組態
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.WorkerCount <= 0 {
		return Settings{}, fmt.Errorf("無效的 WORKER_COUNT: %d", s.WorkerCount)
	}
	return s, nil
}
