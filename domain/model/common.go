package model

import (
	"fmt"
	"strings"
)

// Header is the list of column display names.
type Header []string

// NewHeader create new Header.
func NewHeader(h []string) Header {
	return Header(h)
}

// Equal compare Header.
func (h Header) Equal(h2 Header) bool {
	if len(h) != len(h2) {
		return false
	}
	for i, v := range h {
		if v != h2[i] {
			return false
		}
	}
	return true
}

// Validate returns ErrDuplicateColumnName when two names are equal
// ignoring case.
func (h Header) Validate() error {
	seen := make(map[string]struct{}, len(h))
	for _, name := range h {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateColumnName, name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Record is one accepted row of raw cells.
type Record []string

// NewRecord create new Record.
func NewRecord(r []string) Record {
	return Record(r)
}

// Equal compare Record.
func (r Record) Equal(r2 Record) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, v := range r {
		if v != r2[i] {
			return false
		}
	}
	return true
}

// BadLine is a line whose cell count differs from the header.
type BadLine struct {
	// LineNumber is the 1-based line number in the source
	LineNumber int
	// Text is the raw line
	Text string
	// CellCount is the number of cells found in the line
	CellCount int
}

// String renders the line as <number>-<count>:<text>
func (b BadLine) String() string {
	return fmt.Sprintf("%d-%d:%s", b.LineNumber, b.CellCount, b.Text)
}
