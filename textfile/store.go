package textfile

import (
	"fmt"
	"iter"
	"os"
)

// Store serves the lines of one file by index
type Store interface {
	// Len returns the number of lines
	Len() int
	// Line returns line i without its terminator.
	// It returns ErrLineNotFound when i is out of range.
	Line(i int) (string, error)
	// Close releases the resources held by the store
	Close() error
}

// All returns a sequence over the lines of s starting at index 0.
// The sequence ends at the first failed read, so it may be restarted at any
// time and always stops at the end of the store.
func All(s Store) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; ; i++ {
			line, err := s.Line(i)
			if err != nil {
				return
			}
			if !yield(i, line) {
				return
			}
		}
	}
}

// statRegular returns the file info of path if it names a regular file
func statRegular(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotRegularFile, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	return info, nil
}
