package internal

import (
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	BadgerFilepath  string `env:"BADGER_FILEPATH,default=./data/estate-hub"`
	LogLevel        string `env:"LOG_LEVEL,default=INFO"`
	LimitMessages   *int   `env:"LIMIT_MESSAGES"`
	DefaultPageSize int    `env:"DEFAULT_PAGE_SIZE,default=20"`
	MaxPageSize     int    `env:"MAX_PAGE_SIZE,default=100"`
	Colours         bool   `env:"COLOURS,default=true"`
}

// Load reads the environment, after merging a .env file when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.check(); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

func (c Config) check() error {
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be at least 1, got %d", c.DefaultPageSize)
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("MAX_PAGE_SIZE (%d) must not be lower than DEFAULT_PAGE_SIZE (%d)", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.LimitMessages != nil && *c.LimitMessages < 1 {
		return fmt.Errorf("LIMIT_MESSAGES must be at least 1, got %d", *c.LimitMessages)
	}
	return nil
}
