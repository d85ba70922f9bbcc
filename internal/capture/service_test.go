package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/vaultget/media-vault/internal/model"
	"github.com/vaultget/media-vault/internal/vault"
)

// fakeStream delivers scripted recorder slices through a channel. An empty
// slice models a zero-length data-available event; closing the channel
// models the recorder finalizing after Stop.
type fakeStream struct {
	data     chan []byte
	stopOnce sync.Once

	mu       sync.Mutex
	released bool
	failWith error // non-nil makes the next read fail mid-recording
}

func newFakeStream() *fakeStream {
	return &fakeStream{data: make(chan []byte, 16)}
}

func (fs *fakeStream) Data() io.Reader { return fs }

func (fs *fakeStream) Read(p []byte) (int, error) {
	fs.mu.Lock()
	failWith := fs.failWith
	fs.mu.Unlock()
	if failWith != nil {
		return 0, failWith
	}

	chunk, ok := <-fs.data
	if !ok {
		return 0, io.EOF
	}
	return copy(p, chunk), nil
}

func (fs *fakeStream) Stop() error {
	fs.stopOnce.Do(func() { close(fs.data) })
	return nil
}

func (fs *fakeStream) Release() {
	fs.mu.Lock()
	fs.released = true
	fs.mu.Unlock()
	fs.stopOnce.Do(func() { close(fs.data) })
}

func (fs *fakeStream) wasReleased() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.released
}

type fakeGrabber struct {
	stream  *fakeStream
	openErr error
	opened  int
}

func (fg *fakeGrabber) Open(_ context.Context, _ model.Category) (Stream, error) {
	if fg.openErr != nil {
		return nil, fg.openErr
	}
	fg.opened++
	return fg.stream, nil
}

func TestService_RecordAndStop(t *testing.T) {
	v := mustOpenVault(t)
	stream := newFakeStream()
	service := NewService(v, &fakeGrabber{stream: stream})

	if err := service.Start(model.CategoryWebcam); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if state := service.State(); state != model.SessionRecording {
		t.Errorf("State after start = %s, expected Recording", state)
	}

	// Three data slices: 1000, 0, 2000 bytes. The empty slice contributes
	// nothing to the stored entry.
	stream.data <- bytes.Repeat([]byte{0x1}, 1000)
	stream.data <- []byte{}
	stream.data <- bytes.Repeat([]byte{0x2}, 2000)

	entry, err := service.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	if entry.Size != 3000 {
		t.Errorf("Stored entry size = %d, expected 3000", entry.Size)
	}
	if entry.Category != model.CategoryWebcam {
		t.Errorf("Entry category = %s, expected webcam", entry.Category)
	}
	if state := service.State(); state != model.SessionIdle {
		t.Errorf("State after stop = %s, expected Idle", state)
	}
	if !stream.wasReleased() {
		t.Error("Capture stream should be released after stop")
	}

	entries, err := v.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != entry.Name {
		t.Errorf("Expected the finished entry in the listing, got %v", entries)
	}
}

func TestService_SecondStartRejected(t *testing.T) {
	v := mustOpenVault(t)
	stream := newFakeStream()
	grabber := &fakeGrabber{stream: stream}
	service := NewService(v, grabber)

	if err := service.Start(model.CategoryWebcam); err != nil {
		t.Fatalf("First start failed: %v", err)
	}

	if err := service.Start(model.CategoryScreen); !errors.Is(err, ErrRecordingActive) {
		t.Errorf("Second start should fail with ErrRecordingActive, got %v", err)
	}
	if grabber.opened != 1 {
		t.Errorf("Second start must not acquire a stream, opened %d times", grabber.opened)
	}

	// The live session is untouched: it still records and commits.
	stream.data <- []byte("still recording")
	entry, err := service.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if entry.Size != int64(len("still recording")) {
		t.Errorf("Entry size = %d, expected %d", entry.Size, len("still recording"))
	}

	entries, _ := v.List()
	if len(entries) != 1 {
		t.Errorf("Rejected start must not create a second entry, got %d", len(entries))
	}
}

func TestService_StopWithZeroData(t *testing.T) {
	v := mustOpenVault(t)
	service := NewService(v, &fakeGrabber{stream: newFakeStream()})

	if err := service.Start(model.CategoryScreen); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	entry, err := service.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if entry.Size != 0 {
		t.Errorf("Entry size = %d, expected 0", entry.Size)
	}
	if entry.Name == "" {
		t.Error("Stop with zero data must still commit a named entry")
	}

	entries, _ := v.List()
	if len(entries) != 1 {
		t.Errorf("Expected the empty entry in the listing, got %d entries", len(entries))
	}
}

func TestService_StopWhenIdle(t *testing.T) {
	v := mustOpenVault(t)
	service := NewService(v, &fakeGrabber{stream: newFakeStream()})

	entry, err := service.Stop()
	if err != nil {
		t.Errorf("Stop when idle should be a no-op, got %v", err)
	}
	if entry.Name != "" {
		t.Errorf("Stop when idle should return no entry, got %s", entry.Name)
	}
}

func TestService_AcquireFailure(t *testing.T) {
	v := mustOpenVault(t)
	service := NewService(v, &fakeGrabber{openErr: fmt.Errorf("permission denied")})

	err := service.Start(model.CategoryWebcam)
	if err == nil {
		t.Fatal("Expected acquire failure, got nil")
	}
	if state := service.State(); state != model.SessionIdle {
		t.Errorf("State after failed acquire = %s, expected Idle", state)
	}

	entries, _ := v.List()
	if len(entries) != 0 {
		t.Errorf("Failed acquire must have no side effects, got %v", entries)
	}
}

func TestService_StreamFailureAbortsSession(t *testing.T) {
	v := mustOpenVault(t)
	stream := newFakeStream()
	service := NewService(v, &fakeGrabber{stream: stream})

	var mu sync.Mutex
	var lastError string
	service.SetUpdateCallback(func(u Update) {
		mu.Lock()
		if u.LastError != "" {
			lastError = u.LastError
		}
		mu.Unlock()
	})

	if err := service.Start(model.CategoryWebcam); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	stream.data <- []byte("some data")
	stream.mu.Lock()
	stream.failWith = fmt.Errorf("device disconnected")
	stream.mu.Unlock()

	// The pump aborts on the failed read and discards the partial entry.
	waitForIdle(t, service)

	if !stream.wasReleased() {
		t.Error("Aborted session should release the stream")
	}

	entries, _ := v.List()
	if len(entries) != 0 {
		t.Errorf("Aborted recording must not leave an entry, got %v", entries)
	}

	mu.Lock()
	defer mu.Unlock()
	if lastError == "" {
		t.Error("Abort should surface an error through the update callback")
	}
}

func TestService_StartNonMediaCategory(t *testing.T) {
	v := mustOpenVault(t)
	service := NewService(v, &fakeGrabber{stream: newFakeStream()})

	if err := service.Start(model.CategoryText); err == nil {
		t.Error("Starting a text recording should fail")
	}
}

func TestService_UpdateStates(t *testing.T) {
	v := mustOpenVault(t)
	stream := newFakeStream()
	service := NewService(v, &fakeGrabber{stream: stream})

	var mu sync.Mutex
	var states []model.SessionState
	service.SetUpdateCallback(func(u Update) {
		mu.Lock()
		states = append(states, u.State)
		mu.Unlock()
	})

	if err := service.Start(model.CategoryWebcam); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := service.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(states) < 3 {
		t.Fatalf("Expected at least Acquiring/Recording/Stopping updates, got %v", states)
	}
	if states[0] != model.SessionAcquiring {
		t.Errorf("First update = %s, expected Acquiring", states[0])
	}
	if states[1] != model.SessionRecording {
		t.Errorf("Second update = %s, expected Recording", states[1])
	}
	if states[len(states)-1] != model.SessionIdle {
		t.Errorf("Last update = %s, expected Idle", states[len(states)-1])
	}
}

func waitForIdle(t *testing.T, service *Service) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if service.State() == model.SessionIdle {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("Service did not return to Idle in time")
}

func mustOpenVault(t *testing.T) *vault.Vault {
	t.Helper()
	v, err := vault.Open(filepath.Join(t.TempDir(), "vault"))
	if err != nil {
		t.Fatalf("Failed to open vault: %v", err)
	}
	return v
}
