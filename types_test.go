package tsvsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableName_Sanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "users", want: "users"},
		{in: "sales report", want: "sales_report"},
		{in: "a-b.c", want: "a_b_c"},
		{in: "2024", want: "table_2024"},
		{in: "日本", want: "table"},
		{in: "  ", want: "table"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewTableName(tt.in).Sanitize().String(), tt.in)
	}
}

func TestParseLoadMode(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]LoadMode{"": LoadModeAuto, "AUTO": LoadModeAuto, "memory": LoadModeMemory, " lazy ": LoadModeLazy} {
		got, err := ParseLoadMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLoadMode("mmap")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, "lazy", LoadModeLazy.String())
}

func TestNormalizeKeywordSuffix(t *testing.T) {
	t.Parallel()

	got, err := normalizeKeywordSuffix(" _kw ")
	require.NoError(t, err)
	assert.Equal(t, "_kw", got)

	got, err = normalizeKeywordSuffix("ÄÖÜabcdefgh")
	require.NoError(t, err)
	assert.Equal(t, "ÄÖÜabcde", got)

	_, err = normalizeKeywordSuffix("")
	assert.ErrorIs(t, err, ErrInvalidKeywordSuffix)
}

func TestIsReservedWord(t *testing.T) {
	t.Parallel()

	assert.True(t, IsReservedWord("select"))
	assert.True(t, IsReservedWord("Order"))
	assert.False(t, IsReservedWord("name"))
	assert.Equal(t, "keyX", escapeIdentifier("key", "X"))
	assert.Equal(t, "email", escapeIdentifier("email", "X"))
}
