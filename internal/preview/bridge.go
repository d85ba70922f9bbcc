package preview

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/vaultget/media-vault/internal/model"
	"github.com/vaultget/media-vault/internal/vault"
)

// DefaultFilePermissions applies to preview copies and exported files.
const DefaultFilePermissions = 0644

// Bridge owns the transient preview copies and the export flow.
type Bridge struct {
	vault   *vault.Vault
	tempDir string

	mu       sync.Mutex
	previews map[model.Category]string // current preview path per category
}

// NewBridge creates a bridge with a private temp directory for preview
// copies. Close removes the directory on teardown.
func NewBridge(v *vault.Vault) (*Bridge, error) {
	tempDir, err := os.MkdirTemp("", "media-vault-preview-")
	if err != nil {
		return nil, fmt.Errorf("failed to create preview directory: %w", err)
	}
	return &Bridge{
		vault:    v,
		tempDir:  tempDir,
		previews: make(map[model.Category]string),
	}, nil
}

// Preview materializes the entry's current bytes as a transient copy and
// returns its path. The previous copy for the category is revoked first.
// Fails when the entry can no longer be read (e.g. concurrently deleted).
func (b *Bridge) Preview(entry model.Entry) (string, error) {
	data, err := b.vault.ReadFile(entry.Name)
	if err != nil {
		return "", err
	}

	b.Revoke(entry.Category)

	path := filepath.Join(b.tempDir, entry.Name)
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to materialize preview for %s: %w", entry.Name, err)
	}

	b.mu.Lock()
	b.previews[entry.Category] = path
	b.mu.Unlock()

	return path, nil
}

// Revoke deletes the category's preview copy, if any.
func (b *Bridge) Revoke(category model.Category) {
	b.mu.Lock()
	path := b.previews[category]
	delete(b.previews, category)
	b.mu.Unlock()

	if path != "" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to revoke preview %s: %v", path, err)
		}
	}
}

// RevokeAll deletes every preview copy. Used on teardown and after
// exclusive loads.
func (b *Bridge) RevokeAll() {
	for _, c := range model.Categories() {
		b.Revoke(c)
	}
}

// Export copies the entry's bytes into destDir under the stored name and
// returns the written path. One-shot: no state is kept afterwards.
func (b *Bridge) Export(entry model.Entry, destDir string) (string, error) {
	data, err := b.vault.ReadFile(entry.Name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(destDir, entry.Name)
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to export %s: %w", entry.Name, err)
	}

	log.Printf("Exported %s to %s (%d bytes)", entry.Name, path, len(data))
	return path, nil
}

// Close revokes all previews and removes the temp directory.
func (b *Bridge) Close() error {
	b.RevokeAll()
	return os.RemoveAll(b.tempDir)
}
