package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	reportFile := filepath.Join(tmpDir, "report.json")

	require.NoError(t, WriteFileAtomic(reportFile, []byte("hello world"), 0o644))

	data, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	info, err := os.Stat(reportFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	// No temp files left behind
	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.json", entries[0].Name())
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	t.Parallel()

	reportFile := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteFileAtomic(reportFile, []byte("initial"), 0o644))
	require.NoError(t, WriteFileAtomic(reportFile, []byte("updated content"), 0o644))

	data, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.Equal(t, "updated content", string(data))
}

func TestWriteFileAtomicInvalidDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic("/nonexistent/dir/report.json", []byte("data"), 0o644)
	assert.Error(t, err)
}

func TestWriteJSONAtomic(t *testing.T) {
	t.Parallel()

	reportFile := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSONAtomic(reportFile, map[string]int{"draws": 1081}))

	data, err := os.ReadFile(reportFile)
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 1081, got["draws"])

	assert.Error(t, WriteJSONAtomic(reportFile, func() {}))
}
