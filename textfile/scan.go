package textfile

import (
	"bytes"
	"errors"
	"io"
)

// scanBufferSize is the size of each read during the boundary scan
const scanBufferSize = 64 * 1024

// scanBoundaries reads r once and returns, for every line, the offset at which
// the line content ends (the first byte of its terminator, or EOF for a
// trailing unterminated line), along with the total number of bytes read.
func scanBoundaries(r io.Reader, nl Newline) ([]int64, int64, error) {
	var (
		bounds     []int64
		offset     int64
		prevCR     bool
		terminated bool
	)

	buf := make([]byte, scanBufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if nl == Windows {
				for i, b := range chunk {
					terminated = prevCR && b == lineFeed
					if terminated {
						// CR may sit at the end of the previous chunk
						bounds = append(bounds, offset+int64(i)-1)
					}
					prevCR = b == carriageReturn
				}
			} else {
				term := nl.terminator()
				for start := 0; ; {
					j := bytes.IndexByte(chunk[start:], term)
					if j < 0 {
						break
					}
					bounds = append(bounds, offset+int64(start+j))
					start += j + 1
				}
				terminated = chunk[n-1] == term
			}
			offset += int64(n)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
	}

	if offset > 0 && !terminated {
		bounds = append(bounds, offset)
	}
	return bounds, offset, nil
}

// lineSpan returns the [start, end) byte range of line i
func lineSpan(bounds []int64, i int, nl Newline) (int64, int64) {
	var start int64
	if i > 0 {
		start = bounds[i-1] + nl.width()
	}
	return start, bounds[i]
}
