package tsvsql

import (
	"fmt"
	"os"
	"strings"

	"github.com/nao1215/tsvsql/domain/model"
	"github.com/nao1215/tsvsql/textfile"
)

// validator handles validation logic for TableBuilder
type validator struct{}

// newValidator creates a new validator instance
func newValidator() *validator {
	return &validator{}
}

// validatePath checks that path names an existing regular file
func (v *validator) validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrFileNotFound)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: path does not exist: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("%w: failed to stat path %s: %w", ErrFileNotFound, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: not a regular file: %s", ErrFileNotFound, path)
	}
	return nil
}

// validateColumnTypes parses every column type token
func (v *validator) validateColumnTypes(tokens map[string]string) (map[string]model.Override, error) {
	overrides := make(map[string]model.Override, len(tokens))
	for name, token := range tokens {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: column name is empty for type %q", ErrUnknownColumnType, token)
		}
		o, err := model.ParseOverride(token)
		if err != nil {
			return nil, fmt.Errorf("%w: column %s: %w", ErrUnknownColumnType, name, err)
		}
		overrides[name] = o
	}
	return overrides, nil
}

// validateEncoding returns the canonical name of an encoding label
func (v *validator) validateEncoding(name string) (string, error) {
	canonical, err := textfile.LookupEncoding(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	return canonical, nil
}

// validateCacheLines rejects negative cache sizes
func (v *validator) validateCacheLines(n int) error {
	if n < 0 {
		return fmt.Errorf("cache lines must not be negative: %d", n)
	}
	return nil
}
