package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vaultget/media-vault/internal/model"
)

// File and directory permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// PartialSuffix marks in-flight write targets. Partial files are invisible
// to List and are discarded on abort.
const PartialSuffix = ".part"

// ErrNotFound is returned when an entry name does not resolve in the root.
var ErrNotFound = errors.New("entry not found")

// Vault is a flat store of named entries rooted at a private directory.
type Vault struct {
	root string
}

// Open ensures the root directory exists and returns the vault over it.
func Open(root string) (*Vault, error) {
	if root == "" {
		return nil, fmt.Errorf("vault root is empty")
	}
	if err := os.MkdirAll(root, DefaultDirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create vault root: %w", err)
	}
	return &Vault{root: root}, nil
}

// Root returns the vault root directory.
func (v *Vault) Root() string {
	return v.root
}

// NewName generates a unique entry name for the category using a UUID v7
// token: time-ordered, so listings sort chronologically within a category.
func NewName(category model.Category) string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("%s%d%s", category.Prefix(), time.Now().UnixNano(), category.Extension())
	}
	return category.Prefix() + id.String() + category.Extension()
}

// List returns a snapshot of the entries currently in the root, sorted by
// name. Directories and partial files are excluded. The snapshot is stale
// as soon as any create or delete happens and must be refreshed explicitly.
func (v *Vault) List() ([]model.Entry, error) {
	dirEntries, err := os.ReadDir(v.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault root: %w", err)
	}

	var entries []model.Entry
	for _, de := range dirEntries {
		if de.IsDir() || strings.HasSuffix(de.Name(), PartialSuffix) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			continue
		}

		// Category is best-effort here; foreign files list with an empty
		// category and fail later at load with ErrUnknownCategory.
		category, _ := model.CategoryFromName(de.Name())
		entries = append(entries, model.Entry{
			Name:     de.Name(),
			Category: category,
			Size:     info.Size(),
			ModTime:  info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Create opens a write target bound to a fresh uniquely named entry. The
// entry becomes visible only when the writer is closed successfully.
func (v *Vault) Create(category model.Category) (*Writer, error) {
	name := NewName(category)
	partPath := filepath.Join(v.root, name+PartialSuffix)

	file, err := os.OpenFile(partPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to open write target for %s: %w", name, err)
	}

	return &Writer{vault: v, name: name, partPath: partPath, file: file}, nil
}

// Path returns the absolute path of an entry inside the root. It does not
// check existence.
func (v *Vault) Path(name string) string {
	return filepath.Join(v.root, name)
}

// Stat resolves an entry by exact name.
func (v *Vault) Stat(name string) (model.Entry, error) {
	info, err := os.Stat(v.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return model.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return model.Entry{}, fmt.Errorf("failed to stat entry %s: %w", name, err)
	}
	if info.IsDir() {
		return model.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	category, _ := model.CategoryFromName(name)
	return model.Entry{Name: name, Category: category, Size: info.Size(), ModTime: info.ModTime()}, nil
}

// ReadFile returns the entry's current bytes.
func (v *Vault) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(v.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read entry %s: %w", name, err)
	}
	return data, nil
}

// Remove deletes the entry by exact name. Fails if it does not exist.
func (v *Vault) Remove(name string) error {
	if err := os.Remove(v.Path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("failed to remove entry %s: %w", name, err)
	}
	return nil
}
