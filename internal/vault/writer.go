package vault

import (
	"fmt"
	"os"
)

// Writer is a sequential write target bound to one vault entry. Bytes land
// in a .part temporary; Close commits the entry by rename, Abort discards
// the temporary so the entry never appears in a listing.
type Writer struct {
	vault    *Vault
	name     string
	partPath string
	file     *os.File
	written  int64
	done     bool
}

// Name returns the entry name this writer will commit.
func (w *Writer) Name() string {
	return w.name
}

// Written returns the number of bytes written so far.
func (w *Writer) Written() int64 {
	return w.written
}

// Write appends p to the entry. Writes are strictly sequential.
func (w *Writer) Write(p []byte) (int, error) {
	if w.done {
		return 0, fmt.Errorf("write target for %s is closed", w.name)
	}
	n, err := w.file.Write(p)
	w.written += int64(n)
	if err != nil {
		return n, fmt.Errorf("failed to write to entry %s: %w", w.name, err)
	}
	return n, nil
}

// Close finalizes the write target and makes the entry visible.
func (w *Writer) Close() error {
	if w.done {
		return nil
	}
	w.done = true

	if err := w.file.Close(); err != nil {
		os.Remove(w.partPath)
		return fmt.Errorf("failed to close write target for %s: %w", w.name, err)
	}
	if err := os.Rename(w.partPath, w.vault.Path(w.name)); err != nil {
		os.Remove(w.partPath)
		return fmt.Errorf("failed to commit entry %s: %w", w.name, err)
	}
	return nil
}

// Abort discards all data written so far. The entry will not exist.
func (w *Writer) Abort() error {
	if w.done {
		return nil
	}
	w.done = true

	w.file.Close()
	if err := os.Remove(w.partPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to discard partial entry %s: %w", w.name, err)
	}
	return nil
}
