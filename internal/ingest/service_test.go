package ingest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vaultget/media-vault/internal/model"
	"github.com/vaultget/media-vault/internal/vault"
)

func TestIngest_PreservesByteLength(t *testing.T) {
	// Sizes chosen around the 5 KiB sub-chunk and 32 KiB read buffer
	// boundaries; the stored length must match the source regardless.
	tests := []int{0, 1, 5 * 1024, 5*1024 + 1, 12 * 1024, 32 * 1024, 100*1024 + 37}

	for _, size := range tests {
		v := mustOpenVault(t)
		service := NewService(v)

		payload := bytes.Repeat([]byte("a"), size)
		sourcePath := writeSource(t, payload)

		entry, err := service.Ingest(sourcePath)
		if err != nil {
			t.Fatalf("Ingest of %d bytes failed: %v", size, err)
		}

		if entry.Size != int64(size) {
			t.Errorf("Stored entry size = %d, expected %d", entry.Size, size)
		}

		stored, err := v.ReadFile(entry.Name)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if !bytes.Equal(stored, payload) {
			t.Errorf("Stored bytes differ from source for size %d", size)
		}
	}
}

func TestIngest_EntryNaming(t *testing.T) {
	v := mustOpenVault(t)
	service := NewService(v)

	entry, err := service.Ingest(writeSource(t, []byte("note body")))
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	if !strings.HasPrefix(entry.Name, "text-") {
		t.Errorf("Entry name %s should carry the text- prefix", entry.Name)
	}
	if !strings.HasSuffix(entry.Name, ".txt") {
		t.Errorf("Entry name %s should carry the .txt extension", entry.Name)
	}
	if entry.Category != model.CategoryText {
		t.Errorf("Entry category = %s, expected text", entry.Category)
	}

	entries, err := v.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != entry.Name {
		t.Errorf("Ingested entry should appear in listing, got %v", entries)
	}
}

func TestIngest_MissingSource(t *testing.T) {
	v := mustOpenVault(t)
	service := NewService(v)

	_, err := service.Ingest(filepath.Join(t.TempDir(), "nonexistent.txt"))
	if err == nil {
		t.Fatal("Expected error for missing source file, got nil")
	}

	entries, listErr := v.List()
	if listErr != nil {
		t.Fatalf("List failed: %v", listErr)
	}
	if len(entries) != 0 {
		t.Errorf("Failed ingestion must not leave an entry, got %v", entries)
	}
}

func TestIngest_UpdateCallback(t *testing.T) {
	v := mustOpenVault(t)
	service := NewService(v)

	var statuses []model.TaskStatus
	var lastTask *model.IngestTask
	service.SetUpdateCallback(func(task *model.IngestTask) {
		statuses = append(statuses, task.Status)
		lastTask = task
	})

	payload := bytes.Repeat([]byte("b"), 12*1024)
	entry, err := service.Ingest(writeSource(t, payload))
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	if len(statuses) == 0 {
		t.Fatal("Expected update callbacks during ingestion")
	}
	if statuses[0] != model.TaskStatusPending {
		t.Errorf("First status = %s, expected Pending", statuses[0])
	}
	if statuses[len(statuses)-1] != model.TaskStatusCompleted {
		t.Errorf("Last status = %s, expected Completed", statuses[len(statuses)-1])
	}

	if lastTask.EntryName != entry.Name {
		t.Errorf("Task entry name = %s, expected %s", lastTask.EntryName, entry.Name)
	}
	if lastTask.BytesWritten != int64(len(payload)) {
		t.Errorf("Task bytes written = %d, expected %d", lastTask.BytesWritten, len(payload))
	}
	if lastTask.Progress() != 1.0 {
		t.Errorf("Final progress = %f, expected 1.0", lastTask.Progress())
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}
	if !strings.HasPrefix(id1, TaskIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", TaskIDPrefix, id1)
	}
}

func writeSource(t *testing.T, payload []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.txt")
	if err := os.WriteFile(path, payload, 0644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}
	return path
}

func mustOpenVault(t *testing.T) *vault.Vault {
	t.Helper()
	v, err := vault.Open(filepath.Join(t.TempDir(), "vault"))
	if err != nil {
		t.Fatalf("Failed to open vault: %v", err)
	}
	return v
}
