package tsvsql

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/nao1215/tsvsql/domain/model"
	"github.com/nao1215/tsvsql/textfile"
)

// utf8BOM is stripped from the start of the first line
const utf8BOM = "\uFEFF"

// cellSeparator separates cells in a line
const cellSeparator = "\t"

// parseOptions holds everything the parser needs besides the lines
type parseOptions struct {
	tableName     string
	nullWords     []string
	keywordSuffix string
	skipHeader    bool
	overrides     map[string]model.Override
	logger        *slog.Logger
}

// parser turns the lines of a store into a Table
type parser struct {
	store textfile.Store
	opts  parseOptions
}

func newParser(store textfile.Store, opts parseOptions) *parser {
	if opts.logger == nil {
		opts.logger = slog.New(slog.DiscardHandler)
	}
	return &parser{store: store, opts: opts}
}

// parse reads the header and then every remaining line. Lines whose cell
// count differs from the header are kept as bad lines.
func (p *parser) parse(ctx context.Context) (*Table, error) {
	first, headerLine, err := p.firstNonEmptyLine()
	if err != nil {
		return nil, err
	}

	header, start := p.header(first, headerLine)
	if err := header.Validate(); err != nil {
		return nil, err
	}

	table := newTable(p.opts.tableName, header, p.opts.keywordSuffix, p.opts.nullWords)
	p.applyOverrides(table)

	for i := start; i < p.store.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := p.store.Line(i)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if i == 0 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		cells := strings.Split(line, cellSeparator)
		if len(cells) != len(header) {
			bad := model.BadLine{LineNumber: i + 1, Text: line, CellCount: len(cells)}
			p.opts.logger.Debug("skipping bad line", "line", bad.LineNumber, "cells", bad.CellCount, "want", len(header))
			table.addBadLine(bad)
			continue
		}
		table.addRecord(model.NewRecord(cells))
	}

	p.opts.logger.Debug("parsed table",
		"table", table.Name(),
		"columns", len(header),
		"rows", len(table.Records()),
		"bad_lines", len(table.BadLines()))
	return table, nil
}

// firstNonEmptyLine returns the index and text of the first line holding
// anything besides whitespace
func (p *parser) firstNonEmptyLine() (int, string, error) {
	for i := range p.store.Len() {
		line, err := p.store.Line(i)
		if err != nil {
			return 0, "", fmt.Errorf("line %d: %w", i+1, err)
		}
		if i == 0 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		if strings.TrimSpace(line) != "" {
			return i, line, nil
		}
	}
	return 0, "", ErrEmptyOrInvalidHeader
}

// header builds the column names and returns the index of the first data
// line. With skipHeader the names are col_0..col_n-1 and the line at index
// first is data.
func (p *parser) header(first int, line string) (model.Header, int) {
	cells := strings.Split(line, cellSeparator)
	names := make([]string, len(cells))
	for i, cell := range cells {
		name := model.DisplayName(cell)
		if p.opts.skipHeader || name == "" {
			name = fmt.Sprintf("col_%d", i)
		}
		names[i] = name
	}
	if p.opts.skipHeader {
		return model.NewHeader(names), first
	}
	return model.NewHeader(names), first + 1
}

// applyOverrides attaches the column overrides. Overrides naming an unknown
// column are ignored with a warning.
func (p *parser) applyOverrides(table *Table) {
	names := make([]string, 0, len(p.opts.overrides))
	for name := range p.opts.overrides {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		column := table.column(model.DisplayName(name))
		if column == nil {
			p.opts.logger.Warn("ignoring column type for unknown column", "column", name)
			continue
		}
		column.SetOverride(p.opts.overrides[name])
	}
}
