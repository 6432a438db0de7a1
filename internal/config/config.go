// Package config loads service configuration from environment variables.
//
// A .env file in the working directory is loaded first when present, so
// local development does not need exported variables. See the struct tags
// for the available variables and their defaults.
package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the root configuration for the techwave-api process.
type Config struct {
	Port string `env:"PORT" envDefault:"5000"`

	// AllowedOrigins is a comma-separated list of origins permitted by CORS.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`

	Mongo  MongoConfig  `envPrefix:"MONGODB_"`
	Token  TokenConfig
	Stripe StripeConfig `envPrefix:"STRIPE_"`
}

// MongoConfig contains the document store connection settings.
type MongoConfig struct {
	URI      string `env:"URI,required,notEmpty"`
	Database string `env:"DATABASE" envDefault:"techWaveDB"`
}

// TokenConfig contains the session token settings.
type TokenConfig struct {
	// AccessTokenSecret signs every session token. There is no rotation;
	// changing it invalidates all outstanding sessions.
	AccessTokenSecret    string        `env:"ACCESS_TOKEN_SECRET,required,notEmpty"`
	AccessTokenExpiresIn time.Duration `env:"ACCESS_TOKEN_EXPIRES_IN" envDefault:"168h"`
	Issuer               string        `env:"TOKEN_ISSUER" envDefault:"techwave-api"`
}

// StripeConfig contains the payment provider settings.
type StripeConfig struct {
	SecretKey string `env:"SECRET_KEY,required,notEmpty"`
	Currency  string `env:"CURRENCY" envDefault:"usd"`
}

// Load reads configuration from the environment, preferring an optional
// .env file for local development.
func Load() (*Config, error) {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return &cfg, nil
}
