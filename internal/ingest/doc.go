package ingest

// Package ingest copies user-chosen text files into the vault in bounded
// chunks. A failed copy aborts the write target so no partial entry is left
// behind.
