package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppDataDir(t *testing.T) {
	dir, err := AppDataDir("com.vaultget.media-vault")
	if err != nil {
		t.Fatalf("AppDataDir failed: %v", err)
	}

	if !strings.HasSuffix(dir, "com.vaultget.media-vault") {
		t.Errorf("AppDataDir = %s, expected it to end with the app ID", dir)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("AppDataDir = %s, expected an absolute path", dir)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	dir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("GetHomeDownloadsDir failed: %v", err)
	}

	if filepath.Base(dir) != "Downloads" {
		t.Errorf("GetHomeDownloadsDir = %s, expected a Downloads directory", dir)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("Expected directory to exist, err=%v", err)
	}

	// Second call on an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestOpenFileWithDefaultApp_MissingFile(t *testing.T) {
	err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "nonexistent.mkv"))
	if err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestOpenFileInManager_MissingFile(t *testing.T) {
	err := OpenFileInManager(filepath.Join(t.TempDir(), "nonexistent.mkv"))
	if err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
