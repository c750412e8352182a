package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Upload  UploadConfig
	Profile ProfileConfig
	Workers int `env:"SIM_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=risk_profile"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type UploadConfig struct {
	// MaxBytes caps a single document upload. Default 10 MiB.
	MaxBytes int64 `env:"UPLOAD_MAX_BYTES, default=10485760"`
}

// ProfileConfig holds the configurable validation bounds. The source never
// fixed an upper bound on income/savings; MaxAmount=0 keeps them open.
type ProfileConfig struct {
	MaxAge    int     `env:"PROFILE_MAX_AGE,    default=120"`
	MaxAmount float64 `env:"PROFILE_MAX_AMOUNT, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
