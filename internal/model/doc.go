package model

// Package model defines domain data structures used across the app: vault
// entry categories, entry metadata, recording/ingestion status enums, and the
// per-category active-entry set. Structures are designed for direct binding
// in the UI and explicit state transitions.
