package textfile

import (
	"fmt"
	"strings"
)

// Newline is a line terminator convention
type Newline int

const (
	// Unix terminates lines with LF
	Unix Newline = iota
	// ClassicMac terminates lines with CR
	ClassicMac
	// Windows terminates lines with CR LF
	Windows
)

const (
	lineFeed       = 10
	carriageReturn = 13
)

// String returns the name of the convention
func (n Newline) String() string {
	switch n {
	case Unix:
		return "unix"
	case ClassicMac:
		return "mac"
	case Windows:
		return "windows"
	default:
		return "unix"
	}
}

// width returns the number of bytes in the terminator
func (n Newline) width() int64 {
	if n == Windows {
		return 2
	}
	return 1
}

// terminator returns the single terminator byte for Unix and ClassicMac
func (n Newline) terminator() byte {
	if n == ClassicMac {
		return carriageReturn
	}
	return lineFeed
}

// ParseNewline converts a user supplied name into a Newline.
// Accepted names are unix/lf, mac/cr and windows/crlf (case-insensitive).
func ParseNewline(name string) (Newline, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unix", "lf":
		return Unix, nil
	case "mac", "classicmac", "cr":
		return ClassicMac, nil
	case "windows", "crlf":
		return Windows, nil
	default:
		return Unix, fmt.Errorf("%w: %s", ErrUnknownNewline, name)
	}
}
