package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "tsvsql.yaml", `table_name: users
null_words:
  - NA
  - "-"
keyword_suffix: _k
ignore_first_line: true
newline: windows
encoding: latin1
mode: lazy
cache_lines: 0
column_types:
  id: i32
  price: decimal_10_2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "users", cfg.TableName)
	assert.Equal(t, []string{"NA", "-"}, cfg.NullWords)
	assert.Equal(t, "_k", cfg.KeywordSuffix)
	assert.True(t, cfg.IgnoreFirstLine)
	assert.Equal(t, "windows", cfg.Newline)
	assert.Equal(t, "latin1", cfg.Encoding)
	assert.Equal(t, "lazy", cfg.Mode)
	require.NotNil(t, cfg.CacheLines)
	assert.Equal(t, 0, *cfg.CacheLines)
	assert.Equal(t, map[string]string{"id": "i32", "price": "decimal_10_2"}, cfg.ColumnTypes)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown newline", content: "newline: vms\n"},
		{name: "unknown mode", content: "mode: mmap\n"},
		{name: "negative cache", content: "cache_lines: -1\n"},
		{name: "unknown column type", content: "column_types:\n  id: bigint\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(writeTestFile(t, "tsvsql.yaml", tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfigValidation)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadConfig(writeTestFile(t, "bad.yaml", "table_name: [unclosed\n"))
	require.Error(t, err)
}
