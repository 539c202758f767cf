package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config carries every tunable the server needs. It is loaded once in main
// and handed to the components that need it; nothing else reads the
// environment.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string

	// TokenTTL bounds session token validity. Expiry is the only limit on
	// a token's lifetime; there is no revocation.
	TokenTTL time.Duration

	// BcryptCost is the password hashing work factor.
	BcryptCost int

	OpenAIAPIKey string
	OpenAIModel  string

	// GatewayTimeout bounds a single summarization call.
	GatewayTimeout time.Duration
}

const (
	defaultPort           = "5000"
	defaultTokenTTL       = 7 * 24 * time.Hour
	defaultModel          = "gpt-4o"
	defaultGatewayTimeout = 60 * time.Second
)

// Load reads a .env file if present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", defaultPort),
		MongoURI:       os.Getenv("MONGO_URI"),
		DBName:         os.Getenv("DB_NAME"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       defaultTokenTTL,
		BcryptCost:     bcrypt.DefaultCost,
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", defaultModel),
		GatewayTimeout: defaultGatewayTimeout,
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI environment variable not set")
	}
	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME environment variable not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		cfg.TokenTTL = d
	}
	if v := os.Getenv("GATEWAY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid GATEWAY_TIMEOUT %q: %w", v, err)
		}
		cfg.GatewayTimeout = d
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q", v)
		}
		cfg.BcryptCost = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
