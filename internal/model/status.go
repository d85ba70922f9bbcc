package model

// TaskStatus represents the status of an ingestion task.
type TaskStatus string

const (
	// TaskStatusPending means the task is created but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusWriting means bytes are being copied into the vault
	TaskStatusWriting TaskStatus = "Writing"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed and partial data was discarded
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus.
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is still running.
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusWriting
}

// IsFinished returns true if the task is in a terminal state.
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}

// SessionState represents the state of the single recording session.
// Transitions: Idle → Acquiring → Recording → Stopping → Idle.
type SessionState string

const (
	// SessionIdle means no recording session exists
	SessionIdle SessionState = "Idle"

	// SessionAcquiring means a capture stream is being acquired
	SessionAcquiring SessionState = "Acquiring"

	// SessionRecording means chunks are being written to the vault
	SessionRecording SessionState = "Recording"

	// SessionStopping means the recorder is finalizing
	SessionStopping SessionState = "Stopping"
)

// String returns the string representation of SessionState.
func (ss SessionState) String() string {
	return string(ss)
}

// IsActive returns true while a session exists in any non-idle state.
func (ss SessionState) IsActive() bool {
	return ss == SessionAcquiring || ss == SessionRecording || ss == SessionStopping
}
