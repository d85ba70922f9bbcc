package model

import (
	"fmt"
	"strings"
	"time"
)

// Entry represents a single named byte blob stored in the vault root.
type Entry struct {
	Name     string
	Category Category
	Size     int64     // size in bytes
	ModTime  time.Time // last modification time reported by the vault
}

// Token returns the unique portion of the entry name with the category
// prefix and extension stripped, for compact display.
func (e Entry) Token() string {
	name := strings.TrimPrefix(e.Name, e.Category.Prefix())
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// DisplaySize returns the entry size formatted for the UI.
func (e Entry) DisplaySize() string {
	const (
		kib = 1024
		mib = 1024 * kib
		gib = 1024 * mib
	)

	switch {
	case e.Size >= gib:
		return fmt.Sprintf("%.1f GiB", float64(e.Size)/float64(gib))
	case e.Size >= mib:
		return fmt.Sprintf("%.1f MiB", float64(e.Size)/float64(mib))
	case e.Size >= kib:
		return fmt.Sprintf("%.1f KiB", float64(e.Size)/float64(kib))
	default:
		return fmt.Sprintf("%d B", e.Size)
	}
}

// DisplayTitle returns a short human-readable label for the entry.
func (e Entry) DisplayTitle() string {
	token := e.Token()
	if len(token) > 12 {
		token = token[:12] + "…"
	}
	return fmt.Sprintf("%s %s", e.Category, token)
}
