package model

import "time"

// IngestTask represents a single text-file ingestion into the vault.
type IngestTask struct {
	ID           string
	SourcePath   string
	EntryName    string // vault entry receiving the bytes
	Status       TaskStatus
	BytesTotal   int64
	BytesWritten int64
	LastError    string
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Progress returns completion as 0.0 to 1.0, or 0 when the total is unknown.
func (t *IngestTask) Progress() float64 {
	if t.BytesTotal <= 0 {
		return 0
	}
	p := float64(t.BytesWritten) / float64(t.BytesTotal)
	if p > 1.0 {
		p = 1.0
	}
	return p
}
