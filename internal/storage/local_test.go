package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeString(s string) func(w io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestLocalStorageOpenMissingFile(t *testing.T) {
	s := NewLocalStorage(true)
	_, err := s.Open(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStorageReplaceCreatesParentAndOverwrites(t *testing.T) {
	for _, atomic := range []bool{true, false} {
		s := NewLocalStorage(atomic)
		path := filepath.Join(t.TempDir(), "nested", "runs.csv")

		require.NoError(t, s.Replace(context.Background(), path, writeString("first\nsecond\n")))
		require.NoError(t, s.Replace(context.Background(), path, writeString("third\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "third\n", string(data))

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temp files left behind")
	}
}

func TestLocalStorageAtomicReplaceKeepsOldContentOnFailure(t *testing.T) {
	s := NewLocalStorage(true)
	path := filepath.Join(t.TempDir(), "runs.csv")
	require.NoError(t, s.Replace(context.Background(), path, writeString("kept\n")))

	boom := errors.New("boom")
	err := s.Replace(context.Background(), path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kept\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStorageHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewLocalStorage(true)
	err := s.Replace(ctx, filepath.Join(t.TempDir(), "runs.csv"), writeString("x"))
	require.ErrorIs(t, err, context.Canceled)
}
