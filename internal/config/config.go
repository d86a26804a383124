// Package config reads the configuration of the backend from the
// environment. Variables can also be set in a .env file in the working
// directory; variables that are already set take precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"reflect"
	"strconv"

	"github.com/budget-zero/backend/pkg/storage"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	APIURL      string       `env:"API_URL" validate:"required,url"`
	Port        string       `env:"PORT" validate:"required,numeric"`
	GinMode     string       `env:"GIN_MODE" validate:"oneof=debug release test"`
	LogFormat   string       `env:"LOG_FORMAT" validate:"omitempty,oneof=human json"`
	Storage     storage.Type `env:"STORAGE" validate:"oneof=memory file sqlite postgres"`
	DataDir     string       `env:"DATA_DIR" validate:"required"`
	DatabaseDSN string       `env:"DATABASE_DSN" validate:"required_if=Storage postgres"`

	// Add the base categories to a budget without any data
	SeedDefaults bool `env:"SEED_DEFAULTS"`

	// problems found while reading the environment
	problems []error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("env")
	})
	return v
}

// Load reads the configuration. Without files, an optional .env file in the
// working directory is read. The configuration is validated, all problems
// are returned together.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && (len(files) > 0 || !errors.Is(err, fs.ErrNotExist)) {
		return Config{}, fmt.Errorf("could not read environment file: %w", err)
	}

	c := Config{
		APIURL:      os.Getenv("API_URL"),
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "release"),
		LogFormat:   os.Getenv("LOG_FORMAT"),
		Storage:     storage.Type(getEnv("STORAGE", string(storage.File))),
		DataDir:     getEnv("DATA_DIR", "data"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
	}

	c.SeedDefaults = c.getBool("SEED_DEFAULTS", true)

	return c, c.Validate()
}

// Validate checks the configuration and joins all problems into one error.
func (c Config) Validate() error {
	errs := append([]error{}, c.problems...)

	var validationErrors validator.ValidationErrors
	if err := validate.Struct(c); errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			if e.Tag() == "required" || e.Tag() == "required_if" {
				errs = append(errs, fmt.Errorf("%s must be set", e.Field()))
				continue
			}
			errs = append(errs, fmt.Errorf("%s has the invalid value %q, it must be %s", e.Field(), e.Value(), describe(e)))
		}
	} else if err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// URL returns the parsed API_URL.
func (c Config) URL() (*url.URL, error) {
	return url.Parse(c.APIURL)
}

// Human reports whether logs are written in a human readable format.
// Without LOG_FORMAT, this is the case in gin debug mode.
func (c Config) Human() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}
	return c.LogFormat == "human"
}

// StorageConfig returns the configuration of the storage backend.
func (c Config) StorageConfig(version string) storage.Config {
	return storage.Config{
		Type:    c.Storage,
		DataDir: c.DataDir,
		DSN:     c.DatabaseDSN,
		Version: version,
	}
}

func (c *Config) getBool(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		c.problems = append(c.problems, fmt.Errorf("%s has the invalid value %q, it must be true or false", key, value))
		return defaultValue
	}
	return b
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "url":
		return "a URL"
	case "numeric":
		return "a number"
	case "oneof":
		return "one of " + e.Param()
	default:
		return e.Tag()
	}
}
