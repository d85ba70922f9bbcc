package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/vaultget/media-vault/internal/model"
	"github.com/vaultget/media-vault/internal/vault"
)

// ChunkBufferSize bounds a single read from the capture stream. Chunks are
// written to the vault immediately in arrival order; nothing is buffered
// beyond one read.
const ChunkBufferSize = 64 * 1024

// ErrRecordingActive is returned when a start request arrives while a
// session already exists. Only one recording may run system-wide; a second
// start is rejected, never queued.
var ErrRecordingActive = errors.New("a recording is already in progress")

// Update is a snapshot of the recording session delivered to the UI
// callback on every state change.
type Update struct {
	State        model.SessionState
	Category     model.Category
	EntryName    string
	BytesWritten int64
	LastError    string
}

// session holds everything owned by one recording: the capture stream, the
// open write target, and the pump bookkeeping. Created on start, destroyed
// on stop or abort.
type session struct {
	category model.Category
	state    model.SessionState
	stream   Stream
	writer   *vault.Writer
	cancel   context.CancelFunc
	done     chan struct{} // closed when the pump exits
	pumpErr  error         // set when the pump aborted the session
}

// Service is the recording state machine:
// Idle → Acquiring → Recording → Stopping → Idle.
type Service struct {
	vault   *vault.Vault
	grabber Grabber

	mu       sync.Mutex
	session  *session // the exclusive session token; nil when idle
	onUpdate func(Update)
}

// NewService creates a new recording service.
func NewService(v *vault.Vault, grabber Grabber) *Service {
	return &Service{vault: v, grabber: grabber}
}

// SetUpdateCallback sets the callback function for session updates.
func (s *Service) SetUpdateCallback(callback func(Update)) {
	s.onUpdate = callback
}

// State returns the current session state.
func (s *Service) State() model.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return model.SessionIdle
	}
	return s.session.state
}

// Start acquires a capture stream for the category, opens a new vault
// entry, and begins recording into it. The session token is claimed before
// any blocking work, so a concurrent start fails with ErrRecordingActive
// and leaves the live session untouched.
func (s *Service) Start(category model.Category) error {
	if !category.IsMedia() {
		return fmt.Errorf("cannot record category %s", category)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sess := &session{
		category: category,
		state:    model.SessionAcquiring,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	s.mu.Lock()
	if s.session != nil {
		s.mu.Unlock()
		cancel()
		return ErrRecordingActive
	}
	s.session = sess
	s.mu.Unlock()
	s.notify(sess)

	stream, err := s.grabber.Open(ctx, category)
	if err != nil {
		s.drop(sess)
		return fmt.Errorf("failed to acquire %s stream: %w", category, err)
	}
	sess.stream = stream

	// The entry and its write target exist before recording begins. If this
	// fails the acquired tracks are released and no entry is created.
	writer, err := s.vault.Create(category)
	if err != nil {
		stream.Release()
		s.drop(sess)
		return err
	}
	sess.writer = writer

	s.mu.Lock()
	sess.state = model.SessionRecording
	s.mu.Unlock()
	s.notify(sess)

	log.Printf("Recording %s into %s", category, writer.Name())
	go s.pump(sess)
	return nil
}

// Stop finalizes the active recording: the stream is asked to flush, the
// write target is closed, and the committed entry is returned for
// promotion to active. A stop with no active recording is a no-op.
func (s *Service) Stop() (model.Entry, error) {
	s.mu.Lock()
	sess := s.session
	if sess == nil || sess.state != model.SessionRecording {
		s.mu.Unlock()
		return model.Entry{}, nil
	}
	sess.state = model.SessionStopping
	s.mu.Unlock()
	s.notify(sess)

	if err := sess.stream.Stop(); err != nil {
		log.Printf("Stream stop for %s reported: %v", sess.writer.Name(), err)
	}
	<-sess.done

	if sess.pumpErr != nil {
		// The pump already aborted the session and discarded the entry.
		return model.Entry{}, sess.pumpErr
	}

	if err := sess.writer.Close(); err != nil {
		sess.stream.Release()
		s.drop(sess)
		return model.Entry{}, err
	}

	entry, err := s.vault.Stat(sess.writer.Name())
	sess.stream.Release()
	s.drop(sess)
	if err != nil {
		return model.Entry{}, err
	}

	log.Printf("Recording finished: %s (%d bytes)", entry.Name, entry.Size)
	return entry, nil
}

// pump copies recorder chunks into the write target until the stream ends.
// A zero-length read writes nothing. Any mid-recording failure aborts the
// session: partial data is discarded, matching the ingestion policy.
func (s *Service) pump(sess *session) {
	defer close(sess.done)

	buf := make([]byte, ChunkBufferSize)
	reader := sess.stream.Data()
	for {
		n, readErr := reader.Read(buf)
		if n > 0 {
			if _, err := sess.writer.Write(buf[:n]); err != nil {
				s.abort(sess, err)
				return
			}
			s.notify(sess)
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) || s.stopping(sess) {
				return
			}
			s.abort(sess, fmt.Errorf("capture stream failed: %w", readErr))
			return
		}
	}
}

// abort tears the session down mid-recording: the stream is released, the
// write target aborted, and the error surfaced through the callback.
func (s *Service) abort(sess *session, err error) {
	log.Printf("Recording %s aborted: %v", sess.writer.Name(), err)
	sess.pumpErr = err
	sess.stream.Release()
	sess.writer.Abort()
	sess.cancel()

	s.mu.Lock()
	if s.session == sess {
		s.session = nil
	}
	s.mu.Unlock()

	if s.onUpdate != nil {
		s.onUpdate(Update{
			State:     model.SessionIdle,
			Category:  sess.category,
			EntryName: sess.writer.Name(),
			LastError: err.Error(),
		})
	}
}

// drop clears the session token and reports Idle.
func (s *Service) drop(sess *session) {
	sess.cancel()

	s.mu.Lock()
	if s.session == sess {
		s.session = nil
	}
	s.mu.Unlock()

	if s.onUpdate != nil {
		update := Update{State: model.SessionIdle, Category: sess.category}
		if sess.writer != nil {
			update.EntryName = sess.writer.Name()
			update.BytesWritten = sess.writer.Written()
		}
		s.onUpdate(update)
	}
}

func (s *Service) stopping(sess *session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sess.state == model.SessionStopping
}

func (s *Service) notify(sess *session) {
	if s.onUpdate == nil {
		return
	}

	s.mu.Lock()
	update := Update{State: sess.state, Category: sess.category}
	if sess.writer != nil {
		update.EntryName = sess.writer.Name()
		update.BytesWritten = sess.writer.Written()
	}
	s.mu.Unlock()

	s.onUpdate(update)
}
