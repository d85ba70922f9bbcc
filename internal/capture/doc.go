package capture

// Package capture acquires live device streams (camera+microphone, screen)
// and records them into vault entries. Production capture shells out to
// ffmpeg; the Grabber/Stream interfaces keep the recording state machine
// independent of the device backend.
