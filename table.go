package tsvsql

import (
	"slices"
	"strings"

	"github.com/nao1215/tsvsql/domain/model"
)

// Table is the result of parsing a file: one profile per column, the rows
// whose cell count matched the header and the lines that did not.
type Table struct {
	name          string
	columns       []*model.ColumnProfile
	records       []model.Record
	badLines      []model.BadLine
	keywordSuffix string
	nullWords     []string
}

// newTable creates an empty table for the given columns
func newTable(name string, header model.Header, keywordSuffix string, nullWords []string) *Table {
	columns := make([]*model.ColumnProfile, 0, len(header))
	for _, h := range header {
		columns = append(columns, model.NewColumnProfile(h))
	}
	return &Table{
		name:          name,
		columns:       columns,
		keywordSuffix: keywordSuffix,
		nullWords:     slices.Clone(nullWords),
	}
}

// addRecord profiles every cell and stores the row
func (t *Table) addRecord(record model.Record) {
	for i, cell := range record {
		t.columns[i].Observe(cell, t.nullWords)
	}
	t.records = append(t.records, record)
}

// addBadLine records a line whose cell count differs from the header
func (t *Table) addBadLine(b model.BadLine) {
	t.badLines = append(t.badLines, b)
}

// column returns the profile with the given display name
func (t *Table) column(name string) *model.ColumnProfile {
	for _, c := range t.columns {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Name returns the table name
func (t *Table) Name() string {
	return t.name
}

// Header returns the column display names in file order
func (t *Table) Header() model.Header {
	h := make(model.Header, 0, len(t.columns))
	for _, c := range t.columns {
		h = append(h, c.Name())
	}
	return h
}

// Columns returns the column profiles in file order
func (t *Table) Columns() []*model.ColumnProfile {
	return slices.Clone(t.columns)
}

// ColumnTypes returns the resolved type of every column in file order
func (t *Table) ColumnTypes() []model.SQLType {
	types := make([]model.SQLType, 0, len(t.columns))
	for _, c := range t.columns {
		types = append(types, c.Resolve())
	}
	return types
}

// Records returns the accepted rows
func (t *Table) Records() []model.Record {
	return t.records
}

// BadLines returns the rejected lines in input order
func (t *Table) BadLines() []model.BadLine {
	return t.badLines
}

// MixedTypeColumns returns the names of the columns in which more than one
// category was observed
func (t *Table) MixedTypeColumns() []string {
	var names []string
	for _, c := range t.columns {
		if c.MixedTypes() {
			names = append(names, c.Name())
		}
	}
	return names
}

// BadLinesReport renders every bad line as <line>-<count>:<text> followed by
// a newline
func (t *Table) BadLinesReport() string {
	var sb strings.Builder
	for _, b := range t.badLines {
		sb.WriteString(b.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// HeaderSummary renders one line per column with the observed categories
// and the resolved type, for example "age : boolean,integer -> TINYINT".
// Columns without any classified value show "none".
func (t *Table) HeaderSummary() string {
	var sb strings.Builder
	for _, c := range t.columns {
		categories := c.Categories().String()
		if categories == "" {
			categories = "none"
		}
		sb.WriteString(c.Name())
		sb.WriteString(" : ")
		sb.WriteString(categories)
		sb.WriteString(" -> ")
		sb.WriteString(c.Resolve().DDL())
		if _, ok := c.Override(); ok {
			sb.WriteString(" (override)")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
