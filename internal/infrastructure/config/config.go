package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API   APIConfig
	Store StoreConfig
	Push  PushConfig
	Stub  StubConfig
}

// APIConfig points the client at the Planora backend.
type APIConfig struct {
	BaseURL string        `env:"PLANORA_API_URL,     default=http://localhost:3000"`
	Timeout time.Duration `env:"PLANORA_API_TIMEOUT, default=15s"`
}

// StoreConfig locates the on-device secure store.
type StoreConfig struct {
	Dir    string `env:"PLANORA_STORE_DIR,    default=.planora"`
	Secret string `env:"PLANORA_STORE_SECRET, default=dev-store-secret"`
}

// PushConfig injects the device push token in dev builds, where no real
// push provider is wired.
type PushConfig struct {
	Token string `env:"PLANORA_PUSH_TOKEN"`
}

// StubConfig configures the contract stub server.
type StubConfig struct {
	Port      string `env:"STUB_PORT,       default=3000"`
	JWTSecret string `env:"STUB_JWT_SECRET, default=dev-secret"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
