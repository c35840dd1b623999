package textfile

import "errors"

var (
	// ErrNotRegularFile is returned when the path is missing or is not a regular file
	ErrNotRegularFile = errors.New("textfile: no such file")

	// ErrLineNotFound is returned when a line index is out of range
	ErrLineNotFound = errors.New("textfile: line not found")

	// ErrFileChanged is returned by LazyFile once the file was modified after it was opened
	ErrFileChanged = errors.New("textfile: file changed since it was opened")

	// ErrInvalidEncoding is returned when line bytes cannot be decoded as text
	ErrInvalidEncoding = errors.New("textfile: invalid byte sequence")

	// ErrUnknownEncoding is returned for an unsupported encoding name
	ErrUnknownEncoding = errors.New("textfile: unknown encoding")

	// ErrUnknownNewline is returned for an unsupported newline name
	ErrUnknownNewline = errors.New("textfile: unknown newline convention")
)
