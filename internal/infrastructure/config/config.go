package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionSecret signs the session cookie. Required outside development.
	SessionSecret string `env:"SESSION_SECRET, default=dev-secret-key"`
	// SessionTTL bounds session lifetime. Zero preserves the historical
	// behavior: sessions are valid until explicit logout.
	SessionTTL time.Duration `env:"SESSION_TTL, default=0"`

	Upload UploadConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

type UploadConfig struct {
	// Dir is where profile pictures are written. Created on demand.
	Dir string `env:"UPLOAD_DIR, default=static/uploads"`
	// MaxSize is the overall request payload ceiling, in echo body-limit
	// notation (e.g. "16M").
	MaxSize string `env:"MAX_UPLOAD_SIZE, default=16M"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_admin"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
