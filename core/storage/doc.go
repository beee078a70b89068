// Package storage persists the project manifest safely.
//
// The manifest is the single store of the whole system, so committing it is
// the one step that must never lose data. The Writer keeps two guarantees:
// the previous content is saved to a backup location before anything else
// happens, and the target file is replaced atomically (temp file plus
// rename), so a failed run never leaves a partially written manifest.
//
// # Usage
//
//	w := &storage.Writer{Path: cfg.Manifest, BackupPath: cfg.BackupPath()}
//	if err := w.Write(model.Serialize()); err != nil {
//	    // errors.Is(err, storage.ErrWriteFailure); original file untouched
//	}
package storage
