package textfile

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTemp writes content to a new file in a per-test directory
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
