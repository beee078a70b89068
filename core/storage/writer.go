package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrWriteFailure indicates the manifest could not be committed. When it is
// returned, the target file is guaranteed untouched.
var ErrWriteFailure = errors.New("manifest write failed")

// Writer persists manifest content. Every Write first saves the previous
// content to the backup path, then replaces the target atomically.
type Writer struct {
	// Path is the manifest location.
	Path string
	// BackupPath receives the previous content before every write.
	BackupPath string
}

// Write commits data to Path: the current content is copied to BackupPath,
// data goes to a temporary file in the same directory, is synced, and is
// renamed over Path. Any failure yields ErrWriteFailure with the original
// file untouched and the backup available.
func (w *Writer) Write(data []byte) error {
	if err := w.Backup(); err != nil {
		return err
	}
	if err := w.replace(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return nil
}

// Backup copies the current manifest content to BackupPath.
func (w *Writer) Backup() error {
	current, err := os.ReadFile(w.Path)
	if err != nil {
		return fmt.Errorf("%w: reading current manifest: %v", ErrWriteFailure, err)
	}
	if err := os.WriteFile(w.BackupPath, current, 0o644); err != nil {
		return fmt.Errorf("%w: writing backup: %v", ErrWriteFailure, err)
	}
	return nil
}

func (w *Writer) replace(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(w.Path), filepath.Base(w.Path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), w.Path)
}
