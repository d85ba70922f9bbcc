package preview

// Package preview turns vault entries into transient on-disk copies for
// playback and handles one-shot exports to the user's download directory.
// At most one preview copy exists per category; superseding revokes the old
// copy so nothing leaks across loads.
