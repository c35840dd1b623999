package textfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  string
	}{
		{label: "", want: "utf-8"},
		{label: "UTF8", want: "utf-8"},
		{label: "latin1", want: "windows-1252"},
		{label: " Shift_JIS ", want: "shift_jis"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()

			got, err := LookupEncoding(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := LookupEncoding("utf-16be")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestDecode_LegacyEncodings(t *testing.T) {
	t.Parallel()

	d, err := newDecoder("shift_jis")
	require.NoError(t, err)

	got, err := d.decode([]byte("ab\x82\xa0"))
	require.NoError(t, err)
	assert.Equal(t, "abあ", got)

	_, err = d.decode([]byte("ab\x81"))
	assert.ErrorIs(t, err, ErrInvalidEncoding, "truncated lead byte")

	_, err = d.decode([]byte("\x81\x7f"))
	assert.ErrorIs(t, err, ErrInvalidEncoding, "invalid trail byte")
}

func TestFromBytes_UndecodableLine(t *testing.T) {
	t.Parallel()

	_, err := FromBytes([]byte("id\tname\n1\tab\x81\n"), WithEncoding("shift_jis"))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}
