package textfile

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		newline Newline
		want    []string
	}{
		{name: "empty file", data: "", newline: Unix, want: []string{}},
		{name: "unix terminated", data: "a\nbc\n", newline: Unix, want: []string{"a", "bc"}},
		{name: "unix trailing partial line", data: "a\nbc", newline: Unix, want: []string{"a", "bc"}},
		{name: "unix single terminator", data: "\n", newline: Unix, want: []string{""}},
		{name: "unix single byte", data: "x", newline: Unix, want: []string{"x"}},
		{name: "unix empty lines kept", data: "a\n\nb\n", newline: Unix, want: []string{"a", "", "b"}},
		{name: "unix keeps CR as data", data: "a\r\nb\r\n", newline: Unix, want: []string{"a\r", "b\r"}},
		{name: "mac terminated", data: "a\rb\r", newline: ClassicMac, want: []string{"a", "b"}},
		{name: "mac trailing partial line", data: "a\rb", newline: ClassicMac, want: []string{"a", "b"}},
		{name: "windows terminated", data: "a\r\nb\r\n", newline: Windows, want: []string{"a", "b"}},
		{name: "windows trailing partial line", data: "a\r\nb", newline: Windows, want: []string{"a", "b"}},
		{name: "windows lone CR is data", data: "a\rb\r\nc", newline: Windows, want: []string{"a\rb", "c"}},
		{name: "windows trailing lone CR", data: "a\r", newline: Windows, want: []string{"a\r"}},
		{name: "windows lone LF is data", data: "a\nb\r\n", newline: Windows, want: []string{"a\nb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := []byte(tt.data)
			bounds, size, err := scanBoundaries(bytes.NewReader(data), tt.newline)
			require.NoError(t, err)
			assert.Equal(t, int64(len(data)), size)
			require.Len(t, bounds, len(tt.want), "boundary count must equal line count")

			for i := range bounds {
				start, end := lineSpan(bounds, i, tt.newline)
				assert.Equal(t, tt.want[i], string(data[start:end]), "line %d", i)
			}
		})
	}
}

// oneByteReader returns a single byte per Read to exercise chunk edges
type oneByteReader struct {
	data []byte
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

func TestScanBoundariesAcrossReads(t *testing.T) {
	t.Parallel()

	data := []byte("ab\r\ncd\r\n\r\nef")
	bounds, _, err := scanBoundaries(&oneByteReader{data: data}, Windows)
	require.NoError(t, err)

	var got []string
	for i := range bounds {
		start, end := lineSpan(bounds, i, Windows)
		got = append(got, string(data[start:end]))
	}
	assert.Equal(t, []string{"ab", "cd", "", "ef"}, got)
}

func TestParseNewline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Newline
		wantErr bool
	}{
		{input: "", want: Unix},
		{input: "unix", want: Unix},
		{input: "LF", want: Unix},
		{input: "mac", want: ClassicMac},
		{input: "cr", want: ClassicMac},
		{input: "Windows", want: Windows},
		{input: "crlf", want: Windows},
		{input: "amiga", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseNewline(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownNewline)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
