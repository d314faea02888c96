package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid" // Unique temp names next to the target file
)

// localStorage implements FileStorage on the local filesystem.
type localStorage struct {
	atomic bool
}

// NewLocalStorage creates a local file storage. With atomic set, Replace writes
// to a temp file in the target directory and renames it over the target;
// otherwise the target is truncated and written in place.
func NewLocalStorage(atomic bool) FileStorage {
	return &localStorage{atomic: atomic}
}

func (s *localStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrObjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *localStorage) Replace(ctx context.Context, path string, write func(w io.Writer) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if !s.atomic {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFileMode)
		if err != nil {
			return err
		}
		return writeAndClose(f, write)
	}

	tmpName := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	tmp, err := os.OpenFile(tmpName, os.O_CREATE|os.O_WRONLY|os.O_EXCL, DefaultFileMode)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				log.Printf("WARN: Failed to remove temp file '%s': %v", tmpName, rmErr)
			}
		}
	}()

	if err := writeAndClose(tmp, write); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}

// writeAndClose buffers write into f, syncs and closes it. f is closed on all paths.
func writeAndClose(f *os.File, write func(w io.Writer) error) (err error) {
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	return f.Sync()
}
