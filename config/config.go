// Package config loads the marina settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvBoatsFile = "MARINA_BOATS_FILE"
	EnvCapacity  = "MARINA_CAPACITY"
	EnvStrict    = "MARINA_STRICT"
	EnvCurrency  = "MARINA_CURRENCY"
)

// Defaults used when the environment does not set a value.
const (
	DefaultBoatsFile = "BoatData.csv"
	DefaultCapacity  = 120
	DefaultCurrency  = "USD"
)

// Config holds the application configuration
type Config struct {
	BoatsFile string `validate:"required"`
	Capacity  int    `validate:"min=1,max=100000"`
	Strict    bool
	Currency  string `validate:"len=3,uppercase"`
}

// Load loads the configuration from environment variables, after reading a
// .env file from the current directory if there is one.
func Load() (*Config, error) {
	// The .env file is optional: settings may come from the real environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("ignoring .env file: %v", err)
	}

	cfg := &Config{
		BoatsFile: getEnv(EnvBoatsFile, DefaultBoatsFile),
		Currency:  getEnv(EnvCurrency, DefaultCurrency),
	}

	var err error
	if cfg.Capacity, err = getEnvAsInt(EnvCapacity, DefaultCapacity); err != nil {
		return nil, err
	}
	if cfg.Strict, err = getEnvAsBool(EnvStrict, false); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks every field of the configuration.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var msgs []string
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Field()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must be between 1 and 100000, got %v", e.Field(), e.Value()))
		case "len", "uppercase":
			msgs = append(msgs, fmt.Sprintf("%s must be a three letter uppercase code, got %q", e.Field(), e.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ", "))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return b, nil
}
