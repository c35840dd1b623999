package textfile

import (
	"fmt"
	"os"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// LazyFile keeps only line offsets in memory and re-reads lines from disk on
// demand. Recently read lines are cached; when the cache grows past its
// capacity the oldest half is evicted.
//
// A LazyFile records the modification time and size of the file when it is
// opened. If either changes, every later read fails with ErrFileChanged
// until the file is opened again.
//
// LazyFile is not safe for concurrent use.
type LazyFile struct {
	path     string
	file     *os.File
	newline  Newline
	decoder  *decoder
	bounds   []int64
	size     int64
	modTime  time.Time
	stale    bool
	capacity int
	cache    *orderedmap.OrderedMap[int, string]
}

// Open scans the file at path for line boundaries and keeps it open for
// random access. It fails with ErrNotRegularFile if path is not a regular file.
func Open(path string, opts ...Option) (*LazyFile, error) {
	cfg := newConfig(opts)
	dec, err := newDecoder(cfg.encoding)
	if err != nil {
		return nil, err
	}

	info, err := statRegular(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotRegularFile, path, err)
	}

	bounds, size, err := scanBoundaries(f, cfg.newline)
	if err != nil {
		_ = f.Close() // Ignore close error during error handling
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	if size != info.Size() {
		_ = f.Close() // Ignore close error during error handling
		return nil, fmt.Errorf("%w: %s", ErrFileChanged, path)
	}

	return &LazyFile{
		path:     path,
		file:     f,
		newline:  cfg.newline,
		decoder:  dec,
		bounds:   bounds,
		size:     size,
		modTime:  info.ModTime(),
		capacity: cfg.cacheCapacity,
		cache:    orderedmap.New[int, string](),
	}, nil
}

// Len returns the number of lines found when the file was opened
func (f *LazyFile) Len() int {
	return len(f.bounds)
}

// Path returns the path the file was opened from
func (f *LazyFile) Path() string {
	return f.path
}

// Newline returns the convention used to split the file
func (f *LazyFile) Newline() Newline {
	return f.newline
}

// Line returns line i, reading it from disk unless it is cached
func (f *LazyFile) Line(i int) (string, error) {
	if i < 0 || i >= len(f.bounds) {
		return "", ErrLineNotFound
	}
	if err := f.checkUnchanged(); err != nil {
		return "", err
	}
	if line, ok := f.cache.Get(i); ok {
		return line, nil
	}

	start, end := lineSpan(f.bounds, i, f.newline)
	buf := make([]byte, end-start)
	if _, err := f.file.ReadAt(buf, start); err != nil {
		return "", fmt.Errorf("failed to read line %d of %s: %w", i+1, f.path, err)
	}

	line, err := f.decoder.decode(buf)
	if err != nil {
		return "", fmt.Errorf("line %d: %w", i+1, err)
	}
	f.remember(i, line)
	return line, nil
}

// Changed reports whether the file was modified since it was opened
func (f *LazyFile) Changed() bool {
	return f.checkUnchanged() != nil
}

// CacheCapacity returns the maximum number of cached lines
func (f *LazyFile) CacheCapacity() int {
	return f.capacity
}

// CachedLines returns the number of lines currently cached
func (f *LazyFile) CachedLines() int {
	return f.cache.Len()
}

// SetCacheCapacity changes the cache capacity, dropping the oldest entries
// that no longer fit
func (f *LazyFile) SetCacheCapacity(n int) {
	if n < 0 {
		n = 0
	}
	f.capacity = n
	if over := f.cache.Len() - n; over > 0 {
		f.evict(over)
	}
}

// Close closes the underlying file
func (f *LazyFile) Close() error {
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

// checkUnchanged compares the current file metadata with the values
// recorded at open. Once a change is seen the store stays stale.
func (f *LazyFile) checkUnchanged() error {
	if f.stale {
		return fmt.Errorf("%w: %s", ErrFileChanged, f.path)
	}
	if f.file == nil {
		return fmt.Errorf("%w: %s is closed", ErrFileChanged, f.path)
	}

	info, err := os.Stat(f.path)
	if err != nil || !info.ModTime().Equal(f.modTime) || info.Size() != f.size {
		f.stale = true
		f.cache = orderedmap.New[int, string]()
		return fmt.Errorf("%w: %s", ErrFileChanged, f.path)
	}
	return nil
}

// remember caches line i, evicting the oldest half when over capacity
func (f *LazyFile) remember(i int, line string) {
	switch f.capacity {
	case 0:
		return
	case 1:
		f.cache = orderedmap.New[int, string]()
		f.cache.Set(i, line)
		return
	}

	f.cache.Set(i, line)
	if f.cache.Len() > f.capacity {
		f.evict(f.capacity / 2)
	}
}

// evict drops the n oldest cached lines
func (f *LazyFile) evict(n int) {
	for ; n > 0; n-- {
		oldest := f.cache.Oldest()
		if oldest == nil {
			return
		}
		f.cache.Delete(oldest.Key)
	}
}
