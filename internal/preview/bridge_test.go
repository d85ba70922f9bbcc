package preview

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vaultget/media-vault/internal/model"
	"github.com/vaultget/media-vault/internal/vault"
)

func TestPreview_MaterializesCopy(t *testing.T) {
	v, bridge := setup(t)
	entry := seedEntry(t, v, "webcam-one.mkv", []byte("recorded bytes"))

	path, err := bridge.Preview(entry)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read preview copy: %v", err)
	}
	if !bytes.Equal(data, []byte("recorded bytes")) {
		t.Errorf("Preview copy differs from entry bytes")
	}
	if filepath.Base(path) != entry.Name {
		t.Errorf("Preview copy named %s, expected %s", filepath.Base(path), entry.Name)
	}
}

func TestPreview_SupersedesPreviousCopy(t *testing.T) {
	v, bridge := setup(t)
	first := seedEntry(t, v, "webcam-one.mkv", []byte("first"))
	second := seedEntry(t, v, "webcam-two.mkv", []byte("second"))

	firstPath, err := bridge.Preview(first)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if _, err := bridge.Preview(second); err != nil {
		t.Fatalf("Second preview failed: %v", err)
	}

	if _, err := os.Stat(firstPath); !os.IsNotExist(err) {
		t.Errorf("Previous preview copy should be revoked, stat err=%v", err)
	}
}

func TestPreview_IndependentCategories(t *testing.T) {
	v, bridge := setup(t)
	webcam := seedEntry(t, v, "webcam-one.mkv", []byte("cam"))
	screen := seedEntry(t, v, "screen-one.mkv", []byte("screen"))

	webcamPath, err := bridge.Preview(webcam)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if _, err := bridge.Preview(screen); err != nil {
		t.Fatalf("Preview failed: %v", err)
	}

	if _, err := os.Stat(webcamPath); err != nil {
		t.Errorf("Webcam preview should survive a screen preview, stat err=%v", err)
	}
}

func TestPreview_DeletedEntry(t *testing.T) {
	v, bridge := setup(t)
	entry := seedEntry(t, v, "screen-one.mkv", []byte("gone soon"))

	if err := v.Remove(entry.Name); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if _, err := bridge.Preview(entry); !errors.Is(err, vault.ErrNotFound) {
		t.Errorf("Preview of a deleted entry should fail with ErrNotFound, got %v", err)
	}
}

func TestRevoke(t *testing.T) {
	v, bridge := setup(t)
	entry := seedEntry(t, v, "webcam-one.mkv", []byte("cam"))

	path, err := bridge.Preview(entry)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}

	bridge.Revoke(model.CategoryWebcam)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Revoked preview should be deleted, stat err=%v", err)
	}

	// Revoking an empty category is a no-op
	bridge.Revoke(model.CategoryText)
}

func TestExport(t *testing.T) {
	v, bridge := setup(t)
	entry := seedEntry(t, v, "text-note.txt", []byte("note body"))

	destDir := filepath.Join(t.TempDir(), "downloads")
	path, err := bridge.Export(entry, destDir)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if path != filepath.Join(destDir, entry.Name) {
		t.Errorf("Export path = %s, expected destination with stored name", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read exported file: %v", err)
	}
	if !bytes.Equal(data, []byte("note body")) {
		t.Error("Exported bytes differ from entry bytes")
	}
}

func TestExport_MissingEntry(t *testing.T) {
	_, bridge := setup(t)

	entry := model.Entry{Name: "text-missing.txt", Category: model.CategoryText}
	if _, err := bridge.Export(entry, t.TempDir()); !errors.Is(err, vault.ErrNotFound) {
		t.Errorf("Export of a missing entry should fail with ErrNotFound, got %v", err)
	}
}

func TestClose_RemovesTempDir(t *testing.T) {
	v, bridge := setup(t)
	entry := seedEntry(t, v, "webcam-one.mkv", []byte("cam"))

	if _, err := bridge.Preview(entry); err != nil {
		t.Fatalf("Preview failed: %v", err)
	}

	if err := bridge.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := os.Stat(bridge.tempDir); !os.IsNotExist(err) {
		t.Errorf("Temp directory should be removed on close, stat err=%v", err)
	}
}

func setup(t *testing.T) (*vault.Vault, *Bridge) {
	t.Helper()
	v, err := vault.Open(filepath.Join(t.TempDir(), "vault"))
	if err != nil {
		t.Fatalf("Failed to open vault: %v", err)
	}
	bridge, err := NewBridge(v)
	if err != nil {
		t.Fatalf("Failed to create bridge: %v", err)
	}
	t.Cleanup(func() { bridge.Close() })
	return v, bridge
}

func seedEntry(t *testing.T, v *vault.Vault, name string, data []byte) model.Entry {
	t.Helper()
	if err := os.WriteFile(v.Path(name), data, 0644); err != nil {
		t.Fatalf("Failed to seed entry %s: %v", name, err)
	}
	entry, err := v.Stat(name)
	if err != nil {
		t.Fatalf("Failed to stat seeded entry: %v", err)
	}
	return entry
}
