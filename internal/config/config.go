package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr           = ":8080"
	defaultJWTAccessTTL   = "24h"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultServiceFeeRate = "0.12"
	defaultCurrency       = "USD"
	defaultCheckoutBase   = "https://checkout.example.com/session"
)

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string

	JWTSecret    string
	JWTAccessTTL time.Duration

	// Platform service fee applied to booking subtotals, e.g. 0.12.
	ServiceFeeRate float64
	Currency       string

	CheckoutBaseURL    string
	CheckoutResultURL  string
	CheckoutSuccessURL string
}

// Load reads configuration from the environment. A .env file is applied
// first when present so local runs need no exported variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("ADDR", defaultAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.ServiceFeeRate, err = parseFloatEnv("SERVICE_FEE_RATE", defaultServiceFeeRate)
	if err != nil {
		return nil, err
	}

	cfg.Currency = getEnv("CURRENCY", defaultCurrency)
	cfg.CheckoutBaseURL = getEnv("CHECKOUT_BASE_URL", defaultCheckoutBase)
	cfg.CheckoutResultURL = strings.TrimSpace(os.Getenv("CHECKOUT_RESULT_URL"))
	cfg.CheckoutSuccessURL = strings.TrimSpace(os.Getenv("CHECKOUT_SUCCESS_URL"))

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.ServiceFeeRate < 0 || cfg.ServiceFeeRate >= 1 {
		return fmt.Errorf("SERVICE_FEE_RATE must be in [0, 1)")
	}
	if IsProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.CheckoutResultURL == "" {
			return fmt.Errorf("in prod/release CHECKOUT_RESULT_URL must be set")
		}
	}
	return nil
}

// IsProdLike reports whether env names a production-grade deployment.
func IsProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseFloatEnv(name, fallback string) (float64, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return f, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
