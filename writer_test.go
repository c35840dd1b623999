package tsvsql

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSQLFile(t *testing.T) {
	t.Parallel()

	const text = "CREATE TABLE t (\n  n TINYINT\n);\n"

	for _, name := range []string{"out.sql", "out.sql.gz", "out.sql.xz", "out.sql.zst"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteSQLFile(path, text))

			got, err := readDecompressed(path)
			require.NoError(t, err)
			assert.Equal(t, text, string(got))
		})
	}

	t.Run("plain file is not compressed", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.sql")
		require.NoError(t, WriteSQLFile(path, text))
		raw, err := os.ReadFile(path) //nolint:gosec // test file
		require.NoError(t, err)
		assert.Equal(t, text, string(raw))
	})

	t.Run("bzip2 is read only", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.sql.bz2")
		err := WriteSQLFile(path, text)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.NoFileExists(t, path)
	})
}
