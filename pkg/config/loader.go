package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load reads the .env file and populates the Config struct
func Load() (*Config, error) {
	// Attempt to load .env file, but don't fail if missing (environment might be set otherwise)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// SMTP_SECURITY set to the empty string selects the no-TLS mode;
	// only an absent variable falls back to "tls". An envDefault tag
	// cannot express that, it would also override present-but-empty.
	if _, ok := os.LookupEnv("SMTP_SECURITY"); !ok {
		cfg.Mail.Security = "tls"
	}

	return cfg, nil
}
