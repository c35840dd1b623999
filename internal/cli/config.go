package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/nao1215/tsvsql"
	"github.com/nao1215/tsvsql/domain/model"
	"github.com/nao1215/tsvsql/textfile"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// Config is the optional YAML file given with --config. Every key has a
// matching flag, and flags given on the command line win.
type Config struct {
	TableName       string            `yaml:"table_name"`
	NullWords       []string          `yaml:"null_words"`
	KeywordSuffix   string            `yaml:"keyword_suffix"`
	IgnoreFirstLine bool              `yaml:"ignore_first_line"`
	Newline         string            `yaml:"newline"`
	Encoding        string            `yaml:"encoding"`
	Mode            string            `yaml:"mode"`
	CacheLines      *int              `yaml:"cache_lines"`
	ColumnTypes     map[string]string `yaml:"column_types"`
}

// LoadConfig reads and validates the config file at path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every value that has a fixed vocabulary
func (c *Config) Validate() error {
	if c.Newline != "" {
		if _, err := textfile.ParseNewline(c.Newline); err != nil {
			return fmt.Errorf("%w: newline: %w", ErrConfigValidation, err)
		}
	}
	if _, err := tsvsql.ParseLoadMode(c.Mode); err != nil {
		return fmt.Errorf("%w: mode: %w", ErrConfigValidation, err)
	}
	if c.CacheLines != nil && *c.CacheLines < 0 {
		return fmt.Errorf("%w: cache_lines must not be negative", ErrConfigValidation)
	}
	for name, token := range c.ColumnTypes {
		if _, err := model.ParseOverride(token); err != nil {
			return fmt.Errorf("%w: column_types.%s: %w", ErrConfigValidation, name, err)
		}
	}
	return nil
}
