package ingest

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/vaultget/media-vault/internal/model"
	"github.com/vaultget/media-vault/internal/vault"
)

// Chunking constants
const (
	// ReadBufferSize is how much is pulled from the source per read
	ReadBufferSize = 32 * 1024

	// SubChunkSize bounds individual writes at 5 KiB. The split exists for
	// progress granularity; total byte count is unaffected by chunk size.
	SubChunkSize = 5 * 1024

	TaskIDPrefix = "ingest-"
)

// Service copies text files into the vault.
type Service struct {
	vault    *vault.Vault
	onUpdate func(*model.IngestTask) // callback for UI updates
}

// NewService creates a new ingestion service over the vault.
func NewService(v *vault.Vault) *Service {
	return &Service{vault: v}
}

// SetUpdateCallback sets the callback function for task updates.
func (s *Service) SetUpdateCallback(callback func(*model.IngestTask)) {
	s.onUpdate = callback
}

// Ingest copies the source file into a new text entry. The call is
// synchronous and runs to completion or failure; on failure the write
// target is aborted and no entry appears in the vault.
func (s *Service) Ingest(sourcePath string) (model.Entry, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return model.Entry{}, fmt.Errorf("source file does not exist: %w", err)
	}

	task := &model.IngestTask{
		ID:         generateTaskID(),
		SourcePath: sourcePath,
		Status:     model.TaskStatusPending,
		BytesTotal: info.Size(),
		StartedAt:  time.Now(),
	}
	s.notifyUpdate(task)

	source, err := os.Open(sourcePath)
	if err != nil {
		s.setTaskError(task, fmt.Errorf("failed to open source file: %w", err))
		return model.Entry{}, fmt.Errorf("failed to open source file: %w", err)
	}
	defer source.Close()

	writer, err := s.vault.Create(model.CategoryText)
	if err != nil {
		s.setTaskError(task, err)
		return model.Entry{}, err
	}

	task.EntryName = writer.Name()
	task.Status = model.TaskStatusWriting
	s.notifyUpdate(task)

	if err := s.copyChunks(source, writer, task); err != nil {
		writer.Abort()
		s.setTaskError(task, err)
		return model.Entry{}, err
	}

	if err := writer.Close(); err != nil {
		s.setTaskError(task, err)
		return model.Entry{}, err
	}

	entry, err := s.vault.Stat(writer.Name())
	if err != nil {
		s.setTaskError(task, err)
		return model.Entry{}, err
	}

	task.Status = model.TaskStatusCompleted
	task.FinishedAt = time.Now()
	s.notifyUpdate(task)

	log.Printf("Ingested %s into %s (%d bytes)", sourcePath, entry.Name, entry.Size)
	return entry, nil
}

// copyChunks streams the source into the writer. Each read chunk is split
// into SubChunkSize writes, strictly in order.
func (s *Service) copyChunks(source io.Reader, writer *vault.Writer, task *model.IngestTask) error {
	buf := make([]byte, ReadBufferSize)
	for {
		n, readErr := source.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			for len(chunk) > 0 {
				sub := chunk
				if len(sub) > SubChunkSize {
					sub = sub[:SubChunkSize]
				}
				if _, err := writer.Write(sub); err != nil {
					return err
				}
				task.BytesWritten += int64(len(sub))
				chunk = chunk[len(sub):]

				log.Printf("Ingest %s: %d/%d bytes", task.EntryName, task.BytesWritten, task.BytesTotal)
				s.notifyUpdate(task)
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("failed to read source file: %w", readErr)
		}
	}
}

// setTaskError sets an error state for a task.
func (s *Service) setTaskError(task *model.IngestTask, err error) {
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set.
func (s *Service) notifyUpdate(task *model.IngestTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7.
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
