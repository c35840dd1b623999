package textfile

// DefaultCacheCapacity is the number of lines a LazyFile caches by default
const DefaultCacheCapacity = 500

// config holds settings shared by all stores
type config struct {
	newline       Newline
	encoding      string
	cacheCapacity int
}

func newConfig(opts []Option) config {
	cfg := config{
		newline:       Unix,
		encoding:      utf8Name,
		cacheCapacity: DefaultCacheCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures how a store splits and decodes a file
type Option func(*config)

// WithNewline sets the newline convention (default Unix)
func WithNewline(nl Newline) Option {
	return func(c *config) {
		c.newline = nl
	}
}

// WithEncoding sets the text encoding by WHATWG name (default utf-8)
func WithEncoding(name string) Option {
	return func(c *config) {
		c.encoding = name
	}
}

// WithCacheCapacity sets the number of decoded lines a LazyFile keeps.
// Zero disables caching; negative values are treated as zero.
// MemoryFile ignores this option.
func WithCacheCapacity(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.cacheCapacity = n
	}
}
