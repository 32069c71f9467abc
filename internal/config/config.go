package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"giclean/pkg/contracts/domain"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// GICLEAN_PATHS_RAW_DIR.
const envPrefix = "GICLEAN"

// Config is the complete application configuration. Precedence: built-in
// defaults, then the optional yaml file, then environment variables.
type Config struct {
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// PathsConfig contains the input and output directories for the three data
// domains. Output directories are never created by the cleaner; a missing
// one fails the run.
type PathsConfig struct {
	// RawDir holds the raw delivery-order exports to clean.
	RawDir string `yaml:"raw_dir" envconfig:"RAW_DIR" validate:"required"`
	// CleanedDir receives cleaned delivery-order workbooks.
	CleanedDir string `yaml:"cleaned_dir" envconfig:"CLEANED_DIR" validate:"required"`
	// CSVDir receives the database-export csv files.
	CSVDir string `yaml:"csv_dir" envconfig:"CSV_DIR" validate:"required"`
	// ReturnsDir receives cleaned return-data csv files.
	ReturnsDir string `yaml:"returns_dir" envconfig:"RETURNS_DIR" validate:"required"`
	// LogsDir holds the run logs. Created on startup if missing.
	LogsDir string `yaml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
}

// CleaningConfig contains the transformation offsets and schema settings.
// These were literal indexes in the recorded macros; keeping them here makes
// each recipe auditable without a sample input file.
type CleaningConfig struct {
	HeaderRows           int    `yaml:"header_rows" envconfig:"HEADER_ROWS" validate:"min=0"`
	LeadingColumnStrips  []int  `yaml:"leading_column_strips" envconfig:"LEADING_COLUMN_STRIPS"`
	ReturnLeadingColumns int    `yaml:"return_leading_columns" envconfig:"RETURN_LEADING_COLUMNS" validate:"min=0"`
	SubtotalRowIndex     int    `yaml:"subtotal_row_index" envconfig:"SUBTOTAL_ROW_INDEX" validate:"min=0"`
	KeyColumn            string `yaml:"key_column" envconfig:"KEY_COLUMN" validate:"required"`

	CanonicalOrder []string `yaml:"canonical_order" envconfig:"CANONICAL_ORDER" validate:"min=1"`

	// AllowMissingColumns restores the legacy silent skip when a canonical
	// column is absent. Off by default: the dashboard expects the exact
	// canonical schema.
	AllowMissingColumns bool `yaml:"allow_missing_columns" envconfig:"ALLOW_MISSING_COLUMNS"`

	// Overwrite permits replacing an existing output file of the same name.
	Overwrite bool `yaml:"overwrite" envconfig:"OVERWRITE"`

	// Parallelism bounds concurrent file runs in batch mode. Runs share
	// nothing, so this only trades memory for wall time.
	Parallelism int `yaml:"parallelism" envconfig:"PARALLELISM" validate:"min=1"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"required,oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"required,oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load loads configuration with defaults, then the yaml file at configFile
// if it exists (pass "" to search the usual locations), then environment
// variables.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile checks the usual locations for a config file.
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			RawDir:     "data/raw",
			CleanedDir: "data/cleaned",
			CSVDir:     "data/csv",
			ReturnsDir: "data/returns",
			LogsDir:    "logs",
		},
		Cleaning: CleaningConfig{
			HeaderRows:           8,
			LeadingColumnStrips:  []int{1, 1},
			ReturnLeadingColumns: 2,
			SubtotalRowIndex:     1,
			KeyColumn:            domain.KeyColumn,
			CanonicalOrder:       append([]string(nil), domain.CanonicalOrder...),
			Parallelism:          1,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "both",
			FilePath: "logs/giclean.log",
		},
	}
}
