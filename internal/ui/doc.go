package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the vault, ingestion,
// recording, and preview services and renders the category cards, the
// entry listing, notifications, and settings. All UI strings are
// localized via Localization.
