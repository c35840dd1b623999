package tsvsql

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTestFile writes content to name inside a fresh temporary directory
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// parseWith builds and parses path, failing the test on error
func parseWith(t *testing.T, b *TableBuilder) *Table {
	t.Helper()

	built, err := b.Build(t.Context())
	require.NoError(t, err)
	table, err := built.Parse(t.Context())
	require.NoError(t, err)
	return table
}

const usersTSV = "id\tname\n1\tAlice\n2\tBob\n"
