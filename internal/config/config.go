package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Recommender RecommenderConfig
	Kafka       KafkaConfig
	JWT         JWTConfig
	Admin       AdminConfig
}

type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type RecommenderConfig struct {
	BaseURL string
}

// KafkaConfig is optional: with no brokers configured, events stay
// in-process only.
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type JWTConfig struct {
	Secret      string
	TokenExpiry time.Duration
}

type AdminConfig struct {
	Password string
}

// Load reads configuration from the environment, after loading a .env
// file if one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:            getEnv("SERVER_ADDR", ":8080"),
			ShutdownTimeout: 5 * time.Second,
		},
		Recommender: RecommenderConfig{
			BaseURL: getEnv("RECOMMENDER_URL", "http://localhost:8090"),
		},
		Kafka: KafkaConfig{
			Topic:   getEnv("KAFKA_TOPIC", "bookshop-events"),
			GroupID: getEnv("KAFKA_GROUP_ID", "bookshop-notifier"),
		},
		JWT: JWTConfig{
			Secret:      os.Getenv("JWT_SECRET"),
			TokenExpiry: 12 * time.Hour,
		},
		Admin: AdminConfig{
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}
	if cfg.Admin.Password == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
