package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mcncl/cfgmerge/internal/errors"
)

func TestWriteFile_Creates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, WriteFile(path, []byte("[]\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPerm, info.Mode().Perm())
}

func TestWriteFile_ReplacesAndKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.list")
	require.NoError(t, os.WriteFile(path, []byte("old contents that are longer\n"), 0600))

	require.NoError(t, WriteFile(path, []byte("new\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFile(filepath.Join(dir, "a.json"), []byte("{}\n")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.json", entries[0].Name())
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.json")

	err := WriteFile(path, []byte("{}"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.NewOutputError("", nil)))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []byte("x")))
	assert.Equal(t, "x", buf.String())

	err := Write(failingWriter{}, []byte("x"))
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeOutput, appErr.Type)
}
