package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds server and backing-store settings
type Config struct {
	HTTPPort      string `yaml:"http_port"`
	MongoURI      string `yaml:"mongo_uri"`
	MongoDatabase string `yaml:"mongo_database"`
	RedisAddr     string `yaml:"redis_addr"`
	SessionSecret string `yaml:"session_secret"`
	FlowTTLMin    int    `yaml:"flow_ttl_min"`
}

// Load builds the configuration: defaults, then an optional YAML file,
// then environment variables (a .env file is honored if present).
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:      "8080",
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "lexdraft",
		RedisAddr:     "localhost:6379",
		SessionSecret: "dev-session-secret-change-in-production",
		FlowTTLMin:    60,
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg.HTTPPort, "HTTP_PORT")
	applyEnv(&cfg.MongoURI, "MONGO_URI")
	applyEnv(&cfg.MongoDatabase, "MONGO_DATABASE")
	applyEnv(&cfg.RedisAddr, "REDIS_ADDR")
	applyEnv(&cfg.SessionSecret, "SESSION_SECRET")

	return cfg, nil
}

// FlowTTL is how long an idle flow session survives in Redis
func (c *Config) FlowTTL() time.Duration {
	if c.FlowTTLMin <= 0 {
		return time.Hour
	}
	return time.Duration(c.FlowTTLMin) * time.Minute
}

func applyEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
