package tsvsql

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	"github.com/nao1215/tsvsql/domain/model"
	"github.com/nao1215/tsvsql/textfile"
)

// TableBuilder configures how a file is parsed into a Table.
// Use NewBuilder to create a new instance, then chain method calls to configure it.
//
// The typical usage pattern is:
//
//	builder, err := tsvsql.NewBuilder().
//		AddPath("users.tsv").
//		SetNullWords("n/a", "-").
//		SetColumnType("age", "i8").
//		Build(ctx)
//	if err != nil {
//		return err
//	}
//	table, err := builder.Parse(ctx)
//	if err != nil {
//		return err
//	}
//	fmt.Println(table.CreateTableSQL())
type TableBuilder struct {
	path          string
	tableName     string
	nullWords     []string
	keywordSuffix string
	skipHeader    bool
	columnTypes   map[string]string
	newline       textfile.Newline
	encoding      string
	mode          LoadMode
	cacheLines    int
	logger        *slog.Logger

	// set by Build
	file      *model.File
	overrides map[string]model.Override
	built     bool
}

// NewBuilder creates a new builder with the defaults: Unix newlines, UTF-8,
// keyword suffix "X", automatic load mode and a 500 line cache.
func NewBuilder() *TableBuilder {
	return &TableBuilder{
		keywordSuffix: DefaultKeywordSuffix,
		columnTypes:   make(map[string]string),
		newline:       textfile.Unix,
		encoding:      "utf-8",
		mode:          LoadModeAuto,
		cacheLines:    textfile.DefaultCacheCapacity,
		logger:        slog.New(slog.DiscardHandler),
	}
}

// AddPath sets the file to parse. Plain text, .xlsx and their .gz, .bz2,
// .xz and .zst variants are supported. A later call replaces the path.
//
// Returns the builder for method chaining.
func (b *TableBuilder) AddPath(path string) *TableBuilder {
	b.path = path
	b.built = false
	return b
}

// SetTableName sets the table name used in the generated SQL as is.
// By default the name is derived from the file name, sanitized and given
// the keyword suffix when it is a reserved word.
func (b *TableBuilder) SetTableName(name string) *TableBuilder {
	b.tableName = name
	return b
}

// SetNullWords sets the cell values that are written as NULL and ignored
// during type inference
func (b *TableBuilder) SetNullWords(words ...string) *TableBuilder {
	b.nullWords = append([]string(nil), words...)
	return b
}

// SetKeywordSuffix sets the suffix appended to column names that are
// reserved words. Suffixes longer than 8 characters are truncated.
func (b *TableBuilder) SetKeywordSuffix(suffix string) *TableBuilder {
	b.keywordSuffix = suffix
	return b
}

// SkipHeaderLine treats the first line as data and names the columns
// col_0, col_1, ...
func (b *TableBuilder) SkipHeaderLine() *TableBuilder {
	b.skipHeader = true
	return b
}

// SetColumnType pins the type of a column. The token is one of text,
// vc255, vc127, vc31, decimal_P_S, i8, ui8, i16, ui16, i32, ui32, i64, ui64,
// bool, date, or a category (string, int, decimal, boolean) whose size is
// taken from the data. Tokens are checked by Build.
func (b *TableBuilder) SetColumnType(column, token string) *TableBuilder {
	b.columnTypes[column] = token
	return b
}

// SetColumnTypes pins the types of several columns at once
func (b *TableBuilder) SetColumnTypes(types map[string]string) *TableBuilder {
	maps.Copy(b.columnTypes, types)
	return b
}

// SetNewline sets the newline convention of text input
func (b *TableBuilder) SetNewline(nl textfile.Newline) *TableBuilder {
	b.newline = nl
	return b
}

// SetEncoding sets the text encoding by WHATWG name, for example
// "windows-1252" or "shift_jis"
func (b *TableBuilder) SetEncoding(name string) *TableBuilder {
	b.encoding = name
	return b
}

// SetLoadMode selects whether plain text files are read into memory or
// read lazily from disk
func (b *TableBuilder) SetLoadMode(mode LoadMode) *TableBuilder {
	b.mode = mode
	return b
}

// SetCacheLines sets how many decoded lines a lazily loaded file caches.
// Zero disables the cache.
func (b *TableBuilder) SetCacheLines(n int) *TableBuilder {
	b.cacheLines = n
	return b
}

// SetLogger sets the logger for diagnostics. A nil logger discards them.
func (b *TableBuilder) SetLogger(logger *slog.Logger) *TableBuilder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b.logger = logger
	return b
}

// Build validates the configuration. It checks that the path names a
// regular file, normalizes the keyword suffix, parses the column type
// tokens and resolves the encoding.
//
// Returns the same builder instance for method chaining, or an error if validation fails.
func (b *TableBuilder) Build(ctx context.Context) (*TableBuilder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := newValidator()
	if err := v.validatePath(b.path); err != nil {
		return nil, NewErrorContext("build", b.path).Error(err)
	}

	suffix, err := normalizeKeywordSuffix(b.keywordSuffix)
	if err != nil {
		return nil, err
	}

	overrides, err := v.validateColumnTypes(b.columnTypes)
	if err != nil {
		return nil, NewErrorContext("build", b.path).Error(err)
	}

	encoding, err := v.validateEncoding(b.encoding)
	if err != nil {
		return nil, NewErrorContext("build", b.path).Error(err)
	}

	if err := v.validateCacheLines(b.cacheLines); err != nil {
		return nil, NewErrorContext("build", b.path).Error(err)
	}

	b.keywordSuffix = suffix
	b.encoding = encoding
	b.overrides = overrides
	b.file = model.NewFile(b.path)
	b.built = true
	return b, nil
}

// Parse reads the file and profiles every column. Build must be called first.
func (b *TableBuilder) Parse(ctx context.Context) (*Table, error) {
	if !b.built {
		return nil, errors.New("tsvsql: Build must be called before Parse")
	}

	tableName := b.tableName
	if tableName == "" {
		derived := NewTableName(b.file.TableName()).Sanitize().String()
		tableName = escapeIdentifier(derived, b.keywordSuffix)
	}
	ec := NewErrorContext("parse", b.path).WithTable(tableName)

	store, err := openStore(b.file, sourceOptions{
		mode:       b.mode,
		newline:    b.newline,
		encoding:   b.encoding,
		cacheLines: b.cacheLines,
		logger:     b.logger,
	})
	if err != nil {
		return nil, ec.Error(err)
	}
	defer func() {
		_ = store.Close() // Ignore close error after a completed read
	}()

	table, err := newParser(store, parseOptions{
		tableName:     tableName,
		nullWords:     b.nullWords,
		keywordSuffix: b.keywordSuffix,
		skipHeader:    b.skipHeader,
		overrides:     b.overrides,
		logger:        b.logger,
	}).parse(ctx)
	if err != nil {
		return nil, ec.Error(err)
	}
	return table, nil
}

// ParseFile parses the file at path with the default settings
func ParseFile(ctx context.Context, path string) (*Table, error) {
	b, err := NewBuilder().AddPath(path).Build(ctx)
	if err != nil {
		return nil, err
	}
	return b.Parse(ctx)
}
