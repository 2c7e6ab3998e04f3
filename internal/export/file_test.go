package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/habitmd/internal/output"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habit.md")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o600))

	require.NoError(t, WriteFile(path, "| 2024 |\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "| 2024 |\n", string(data))
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "habit.md")

	err := WriteFile(path, "x")

	require.Error(t, err)
	assert.Equal(t, output.ExitSystemError, output.GetExitCode(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
