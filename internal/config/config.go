package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/alexanderramin/registrar/internal/domain"
	"github.com/alexanderramin/registrar/internal/logger"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultDotEnv is read by Load when no other files are given.
const DefaultDotEnv = ".env"

// Config holds process-wide settings for the registrar binary.
type Config struct {
	LogLevel    logger.LogLevel
	LogFormat   string
	LogUseCases bool
	// File is the department file commands load; empty means the built-in demo.
	File string
	// DefaultCapacity applies to imported courses without a capacity.
	DefaultCapacity int
	// MaxEnrollments applies to imported managed students without a limit.
	MaxEnrollments int

	// Warnings lists dotenv files that exist but could not be read. Load
	// runs before logging is configured, so callers log these afterwards.
	Warnings []error
}

func Default() Config {
	return Config{
		LogLevel:        logger.InfoLevel,
		LogFormat:       FormatText,
		LogUseCases:     false,
		DefaultCapacity: domain.DefaultCapacity,
		MaxEnrollments:  domain.DefaultMaxEnrollments,
	}
}

// Load reads REGISTRAR_* variables, falling back to values from the dotenv
// files and then to defaults. Process environment wins over dotenv files.
// Missing files are skipped; invalid values are ignored.
func Load(dotenvFiles ...string) Config {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{DefaultDotEnv}
	}
	fileVals, warnings := readDotEnv(dotenvFiles)
	get := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileVals[key]
	}

	cfg := Default()
	cfg.Warnings = warnings
	if v := get("REGISTRAR_LOG_LEVEL"); v != "" {
		if l, ok := logger.ParseLevel(v); ok {
			cfg.LogLevel = l
		}
	}
	if v := get("REGISTRAR_LOG_FORMAT"); v == FormatText || v == FormatJSON {
		cfg.LogFormat = v
	}
	if v := get("REGISTRAR_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := get("REGISTRAR_FILE"); v != "" {
		cfg.File = v
	}
	if v := get("REGISTRAR_DEFAULT_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DefaultCapacity = n
		}
	}
	if v := get("REGISTRAR_MAX_ENROLLMENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxEnrollments = n
		}
	}
	return cfg
}

func readDotEnv(files []string) (map[string]string, []error) {
	vals := make(map[string]string)
	var warnings []error
	for _, f := range files {
		m, err := godotenv.Read(f)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				warnings = append(warnings, fmt.Errorf("reading dotenv file %s: %w", f, err))
			}
			continue
		}
		// Earlier files take precedence, as with godotenv.Load.
		for k, v := range m {
			if _, ok := vals[k]; !ok {
				vals[k] = v
			}
		}
	}
	return vals, warnings
}

// Logger returns the logger settings for output w.
func (c Config) Logger(w io.Writer) logger.Config {
	return logger.Config{
		Level:  c.LogLevel,
		Pretty: c.LogFormat != FormatJSON,
		Output: w,
	}
}
