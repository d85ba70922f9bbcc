package vault

// Package vault implements the app-private entry store: a flat directory of
// uniquely named byte blobs. Writers stage data in .part temporaries and
// commit by rename, so an aborted write never surfaces as an entry.
