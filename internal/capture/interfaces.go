package capture

import (
	"context"
	"io"

	"github.com/vaultget/media-vault/internal/model"
)

// Stream is one live capture feed. The producer emits container bytes on
// Data in arrival order until the stream is finalized or released.
type Stream interface {
	// Data returns the recorder output. It reaches EOF after Stop.
	Data() io.Reader

	// Stop asks the producer to finalize; buffered data is flushed first.
	Stop() error

	// Release tears the capture down outright, discarding in-flight data.
	// Safe to call after Stop.
	Release()
}

// Grabber acquires a capture stream appropriate to a category: webcam means
// camera plus microphone, screen means display video only.
type Grabber interface {
	Open(ctx context.Context, category model.Category) (Stream, error)
}

// Recorder defines the interface for the recording service.
type Recorder interface {
	SetUpdateCallback(func(Update))
	Start(category model.Category) error
	Stop() (model.Entry, error)
	State() model.SessionState
}
