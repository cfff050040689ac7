package config

import (
	"github.com/caarlos0/env/v8"
)

// Config holds all runtime settings, populated from environment
// variables (a .env file is loaded first when present).
type Config struct {
	Port            string `env:"PORT" envDefault:"5000"`
	MongoURI        string `env:"MONGO_URI,required"`
	DBName          string `env:"DB_NAME" envDefault:"technocyDb"`
	JWTSecret       string `env:"ACCESS_TOKEN_SECRET,required"`
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`
	SendGridAPIKey  string `env:"SENDGRID_API_KEY"`
	EmailSender     string `env:"EMAIL_SENDER"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
