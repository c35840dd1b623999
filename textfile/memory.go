package textfile

import (
	"bytes"
	"fmt"
	"os"
)

// MemoryFile holds every decoded line of a file in memory
type MemoryFile struct {
	newline Newline
	lines   []string
}

// ReadFile reads the whole file at path and splits it into lines.
// It fails with ErrNotRegularFile if path is not a regular file and with
// ErrInvalidEncoding if any line cannot be decoded.
func ReadFile(path string, opts ...Option) (*MemoryFile, error) {
	if _, err := statRegular(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotRegularFile, path, err)
	}
	return FromBytes(data, opts...)
}

// FromBytes splits data into lines. It is used for content that was
// decompressed or converted in memory.
func FromBytes(data []byte, opts ...Option) (*MemoryFile, error) {
	cfg := newConfig(opts)
	dec, err := newDecoder(cfg.encoding)
	if err != nil {
		return nil, err
	}

	bounds, _, err := scanBoundaries(bytes.NewReader(data), cfg.newline)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(bounds))
	for i := range bounds {
		start, end := lineSpan(bounds, i, cfg.newline)
		line, err := dec.decode(data[start:end])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines[i] = line
	}

	return &MemoryFile{
		newline: cfg.newline,
		lines:   lines,
	}, nil
}

// Len returns the number of lines
func (m *MemoryFile) Len() int {
	return len(m.lines)
}

// Line returns line i
func (m *MemoryFile) Line(i int) (string, error) {
	if i < 0 || i >= len(m.lines) {
		return "", ErrLineNotFound
	}
	return m.lines[i], nil
}

// Newline returns the convention used to split the file
func (m *MemoryFile) Newline() Newline {
	return m.newline
}

// Close is a no-op; it exists so MemoryFile satisfies Store
func (m *MemoryFile) Close() error {
	return nil
}
