package textfile

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

const utf8Name = "utf-8"

// decoder turns raw line bytes into text
type decoder struct {
	name string
	// enc is nil for UTF-8, which is validated strictly
	enc encoding.Encoding
}

// newDecoder looks up an encoding by its WHATWG name or label.
// Multi-byte code unit encodings (UTF-16) are rejected because their line
// terminators are not single bytes.
func newDecoder(name string) (*decoder, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if label == "" || label == utf8Name || label == "utf8" {
		return &decoder{name: utf8Name}, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	if canonical == utf8Name {
		return &decoder{name: utf8Name}, nil
	}
	if strings.HasPrefix(canonical, "utf-16") {
		return nil, fmt.Errorf("%w: %s is not byte oriented", ErrUnknownEncoding, name)
	}
	return &decoder{name: canonical, enc: enc}, nil
}

// decode converts b to a string or fails with ErrInvalidEncoding
func (d *decoder) decode(b []byte) (string, error) {
	if d.enc == nil {
		if !utf8.Valid(b) {
			return "", ErrInvalidEncoding
		}
		return string(b), nil
	}

	out, err := d.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidEncoding, d.name, err)
	}
	// Legacy decoders write U+FFFD for byte sequences they cannot map.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", fmt.Errorf("%w: %s: undecodable byte sequence", ErrInvalidEncoding, d.name)
	}
	return string(out), nil
}

// LookupEncoding returns the canonical WHATWG name of an encoding label, or
// ErrUnknownEncoding if no store can decode it
func LookupEncoding(name string) (string, error) {
	d, err := newDecoder(name)
	if err != nil {
		return "", err
	}
	return d.name, nil
}
