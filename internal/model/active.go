package model

import "sync"

// ActiveEntry is the active-entry reference for one category plus its
// transient UI-only companions. Companions are invalidated whenever the
// reference is superseded or cleared.
type ActiveEntry struct {
	Entry       Entry
	TextContent string // decoded content, text category only
	PreviewPath string // transient preview copy on disk, media categories
}

// ActiveSet holds at most one active entry per category. It is owned by the
// top-level orchestrator and shared with views by reference. Methods return
// the preview paths they invalidated so the caller can revoke the files.
type ActiveSet struct {
	mu      sync.Mutex
	entries map[Category]*ActiveEntry
}

// NewActiveSet creates an empty active-entry set.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{entries: make(map[Category]*ActiveEntry)}
}

// Get returns the active entry for a category, if any.
func (s *ActiveSet) Get(c Category) (ActiveEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ae, ok := s.entries[c]
	if !ok {
		return ActiveEntry{}, false
	}
	return *ae, true
}

// Promote makes the entry active for its own category, superseding any
// previous active entry there. The other categories are untouched.
func (s *ActiveSet) Promote(e Entry) (revoked []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	revoked = s.dropLocked(e.Category)
	s.entries[e.Category] = &ActiveEntry{Entry: e}
	return revoked
}

// PromoteExclusive makes the entry active for its category and clears the
// other two categories' references and companions. Used by the load path:
// loading any entry supersedes everything currently shown.
func (s *ActiveSet) PromoteExclusive(e Entry) (revoked []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range Categories() {
		revoked = append(revoked, s.dropLocked(c)...)
	}
	s.entries[e.Category] = &ActiveEntry{Entry: e}
	return revoked
}

// SetTextContent attaches decoded text content to the category's active
// entry. No-op when the category has no active entry.
func (s *ActiveSet) SetTextContent(c Category, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ae, ok := s.entries[c]; ok {
		ae.TextContent = content
	}
}

// SetPreviewPath attaches a transient preview path to the category's active
// entry and returns the previous path, which the caller must revoke.
func (s *ActiveSet) SetPreviewPath(c Category, path string) (previous string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ae, ok := s.entries[c]
	if !ok {
		return ""
	}
	previous = ae.PreviewPath
	ae.PreviewPath = path
	return previous
}

// Clear drops the active entry for a category together with its companions.
func (s *ActiveSet) Clear(c Category) (revoked []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropLocked(c)
}

// ClearIf drops the category's active entry only when it references the
// named entry. Used after delete so an unrelated active entry survives.
func (s *ActiveSet) ClearIf(c Category, name string) (revoked []string, cleared bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ae, ok := s.entries[c]
	if !ok || ae.Entry.Name != name {
		return nil, false
	}
	return s.dropLocked(c), true
}

// ClearAll drops every category's active entry. Used on teardown.
func (s *ActiveSet) ClearAll() (revoked []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range Categories() {
		revoked = append(revoked, s.dropLocked(c)...)
	}
	return revoked
}

func (s *ActiveSet) dropLocked(c Category) (revoked []string) {
	if ae, ok := s.entries[c]; ok {
		if ae.PreviewPath != "" {
			revoked = append(revoked, ae.PreviewPath)
		}
		delete(s.entries, c)
	}
	return revoked
}
