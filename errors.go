package tsvsql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nao1215/tsvsql/domain/model"
	"github.com/nao1215/tsvsql/textfile"
)

// Standard error messages and error creation functions for consistency
var (
	// ErrFileNotFound indicates the path is missing or is not a regular file
	ErrFileNotFound = errors.New("tsvsql: file not found")

	// ErrEmptyOrInvalidHeader indicates the file has no usable header line
	ErrEmptyOrInvalidHeader = errors.New("tsvsql: empty file or invalid header")

	// ErrLineDecode indicates that a line could not be decoded as text
	ErrLineDecode = errors.New("tsvsql: line decode failure")

	// ErrFileChanged indicates the file was modified while it was being read
	ErrFileChanged = errors.New("tsvsql: file changed while reading")

	// ErrDuplicateColumnName indicates that the header repeats a column name
	ErrDuplicateColumnName = errors.New("tsvsql: duplicate column name")

	// ErrUnknownColumnType indicates an unrecognized column type token
	ErrUnknownColumnType = errors.New("tsvsql: unknown column type")

	// ErrInvalidKeywordSuffix indicates an empty keyword suffix
	ErrInvalidKeywordSuffix = errors.New("tsvsql: invalid keyword suffix")

	// ErrUnsupportedFormat indicates an unsupported file format or encoding
	ErrUnsupportedFormat = errors.New("tsvsql: unsupported file format")
)

// ErrorContext provides context for where an error occurred
type ErrorContext struct {
	Operation string
	FilePath  string
	TableName string
	Details   string
}

// NewErrorContext creates a new error context
func NewErrorContext(operation, filePath string) *ErrorContext {
	return &ErrorContext{
		Operation: operation,
		FilePath:  filePath,
	}
}

// WithTable adds table context to the error
func (ec *ErrorContext) WithTable(tableName string) *ErrorContext {
	ec.TableName = tableName
	return ec
}

// WithDetails adds details to the error context
func (ec *ErrorContext) WithDetails(details string) *ErrorContext {
	ec.Details = details
	return ec
}

// Error creates a formatted error with context. Errors from the textfile
// and model packages are translated to the sentinels of this package so
// callers only need errors.Is against tsvsql errors.
func (ec *ErrorContext) Error(baseErr error) error {
	parts := []string{fmt.Sprintf("tsvsql: %s failed", ec.Operation)}

	if ec.FilePath != "" {
		parts = append(parts, "file: "+ec.FilePath)
	}
	if ec.TableName != "" {
		parts = append(parts, "table: "+ec.TableName)
	}
	if ec.Details != "" {
		parts = append(parts, "details: "+ec.Details)
	}

	context := strings.Join(parts, ", ")
	if baseErr == nil {
		return errors.New(context)
	}
	if sentinel := translate(baseErr); sentinel != nil {
		return fmt.Errorf("%s: %w: %w", context, sentinel, baseErr)
	}
	return fmt.Errorf("%s: %w", context, baseErr)
}

// translate maps lower level errors to the sentinel they belong to
func translate(err error) error {
	switch {
	case errors.Is(err, ErrFileNotFound), errors.Is(err, ErrEmptyOrInvalidHeader),
		errors.Is(err, ErrLineDecode), errors.Is(err, ErrFileChanged),
		errors.Is(err, ErrDuplicateColumnName), errors.Is(err, ErrUnknownColumnType),
		errors.Is(err, ErrInvalidKeywordSuffix), errors.Is(err, ErrUnsupportedFormat):
		return nil
	case errors.Is(err, textfile.ErrNotRegularFile):
		return ErrFileNotFound
	case errors.Is(err, textfile.ErrInvalidEncoding):
		return ErrLineDecode
	case errors.Is(err, textfile.ErrFileChanged):
		return ErrFileChanged
	case errors.Is(err, textfile.ErrUnknownEncoding), errors.Is(err, textfile.ErrUnknownNewline):
		return ErrUnsupportedFormat
	case errors.Is(err, model.ErrDuplicateColumnName):
		return ErrDuplicateColumnName
	case errors.Is(err, model.ErrUnknownType):
		return ErrUnknownColumnType
	default:
		return nil
	}
}
