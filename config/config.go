package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"rating-rank/utils"
)

// Config holds all experiment parameters loaded from environment variables.
type Config struct {
	SampleSize int     `env:"SAMPLE_SIZE" envDefault:"1000" validate:"gt=0"`
	Confidence float64 `env:"CONFIDENCE" envDefault:"0.95" validate:"gt=0,lt=1"`

	// Seed 0 means "derive one from the clock"; main logs the seed it picked.
	Seed     uint64 `env:"SEED" envDefault:"0"`
	MaxVotes int    `env:"MAX_VOTES" envDefault:"1000" validate:"gte=0"`
	IDLength int    `env:"ID_LENGTH" envDefault:"5" validate:"gte=1"`

	PreviewRows   int    `env:"PREVIEW_ROWS" envDefault:"5" validate:"gte=0"`
	CSVOutputPath string `env:"CSV_OUTPUT_PATH"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the .env file, parses the environment and validates the result.
func Load(logger *utils.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("[config] No .env file found, falling back to system env vars")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg against the struct tag rules.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		SampleSize:  1000,
		Confidence:  0.95,
		MaxVotes:    1000,
		IDLength:    5,
		PreviewRows: 5,
		LogLevel:    "info",
	}
}
