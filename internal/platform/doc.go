package platform

// Package platform isolates OS-specific concerns: resolving the app-private
// data directory and the user's Downloads directory, and opening or
// revealing files with the host system's tools.
