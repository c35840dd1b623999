package tsvsql

import (
	"strings"
)

// Keyword suffix constants
const (
	// DefaultKeywordSuffix is appended to column names that are SQL keywords
	DefaultKeywordSuffix = "X"
	// MaxKeywordSuffixLength is the longest suffix kept; longer ones are truncated
	MaxKeywordSuffixLength = 8
)

// lazyThreshold is the file size from which LoadModeAuto keeps lines on disk
const lazyThreshold = 16 << 20

// Character validation constants
const (
	// firstDigitChar represents the first numeric character
	firstDigitChar = '0'
	// lastDigitChar represents the last numeric character
	lastDigitChar = '9'
	// firstLowerChar represents the first lowercase letter
	firstLowerChar = 'a'
	// lastLowerChar represents the last lowercase letter
	lastLowerChar = 'z'
	// firstUpperChar represents the first uppercase letter
	firstUpperChar = 'A'
	// lastUpperChar represents the last uppercase letter
	lastUpperChar = 'Z'
	// underscoreChar represents the underscore character
	underscoreChar = '_'
)

// LoadMode selects how the lines of a plain text file are held
type LoadMode int

const (
	// LoadModeAuto reads small files into memory and keeps large ones on disk
	LoadModeAuto LoadMode = iota
	// LoadModeMemory decodes every line up front
	LoadModeMemory
	// LoadModeLazy keeps line offsets only and reads lines on demand
	LoadModeLazy
)

// String returns the mode name
func (m LoadMode) String() string {
	switch m {
	case LoadModeAuto:
		return "auto"
	case LoadModeMemory:
		return "memory"
	case LoadModeLazy:
		return "lazy"
	default:
		return "auto"
	}
}

// ParseLoadMode converts "auto", "memory" or "lazy" to a LoadMode.
// An empty name selects LoadModeAuto.
func ParseLoadMode(name string) (LoadMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return LoadModeAuto, nil
	case "memory":
		return LoadModeMemory, nil
	case "lazy":
		return LoadModeLazy, nil
	default:
		return LoadModeAuto, NewErrorContext("parse load mode", "").WithDetails(name).Error(ErrUnsupportedFormat)
	}
}

// TableName represents a table name with validation
type TableName struct {
	value string
}

// NewTableName creates a new TableName with validation
func NewTableName(name string) TableName {
	// Basic validation - table name cannot be empty
	if strings.TrimSpace(name) == "" {
		return TableName{value: "table"}
	}
	return TableName{value: strings.TrimSpace(name)}
}

// String returns the string representation of TableName
func (tn TableName) String() string {
	return tn.value
}

// Sanitize returns a copy that is safe to use unquoted: separators become
// underscores, other punctuation is dropped and a leading digit is prefixed
// with "table_"
func (tn TableName) Sanitize() TableName {
	replacer := strings.NewReplacer(" ", "_", "-", "_", ".", "_")
	result := replacer.Replace(tn.value)

	var sanitized strings.Builder
	for _, r := range result {
		if (r >= firstLowerChar && r <= lastLowerChar) ||
			(r >= firstUpperChar && r <= lastUpperChar) ||
			(r >= firstDigitChar && r <= lastDigitChar) ||
			r == underscoreChar {
			sanitized.WriteRune(r)
		}
	}

	finalResult := sanitized.String()
	if finalResult != "" && finalResult[0] >= firstDigitChar && finalResult[0] <= lastDigitChar {
		finalResult = "table_" + finalResult
	}
	if finalResult == "" {
		finalResult = "table"
	}
	return TableName{value: finalResult}
}

// normalizeKeywordSuffix truncates suffix to MaxKeywordSuffixLength runes
func normalizeKeywordSuffix(suffix string) (string, error) {
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		return "", NewErrorContext("set keyword suffix", "").WithDetails("suffix is empty").Error(ErrInvalidKeywordSuffix)
	}
	runes := []rune(suffix)
	if len(runes) > MaxKeywordSuffixLength {
		runes = runes[:MaxKeywordSuffixLength]
	}
	return string(runes), nil
}
