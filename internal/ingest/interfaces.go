package ingest

import (
	"github.com/vaultget/media-vault/internal/model"
)

// Ingester defines the interface for the text-file ingestion service.
type Ingester interface {
	SetUpdateCallback(func(*model.IngestTask))
	Ingest(sourcePath string) (model.Entry, error)
}
