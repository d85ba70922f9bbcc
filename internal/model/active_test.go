package model

import "testing"

func TestActiveSet_Promote(t *testing.T) {
	set := NewActiveSet()
	first := Entry{Name: "webcam-one.mkv", Category: CategoryWebcam}
	second := Entry{Name: "webcam-two.mkv", Category: CategoryWebcam}

	set.Promote(first)
	set.SetPreviewPath(CategoryWebcam, "/tmp/preview-one.mkv")

	revoked := set.Promote(second)
	if len(revoked) != 1 || revoked[0] != "/tmp/preview-one.mkv" {
		t.Errorf("Promote should revoke the superseded preview, got %v", revoked)
	}

	active, ok := set.Get(CategoryWebcam)
	if !ok {
		t.Fatal("Expected an active webcam entry")
	}
	if active.Entry.Name != second.Name {
		t.Errorf("Active entry = %s, expected %s", active.Entry.Name, second.Name)
	}
	if active.PreviewPath != "" {
		t.Errorf("New active entry should have no preview path, got %s", active.PreviewPath)
	}
}

func TestActiveSet_PromoteLeavesOtherCategories(t *testing.T) {
	set := NewActiveSet()
	set.Promote(Entry{Name: "text-one.txt", Category: CategoryText})
	set.Promote(Entry{Name: "screen-one.mkv", Category: CategoryScreen})

	if _, ok := set.Get(CategoryText); !ok {
		t.Error("Promoting a screen entry should not clear the text entry")
	}
	if _, ok := set.Get(CategoryScreen); !ok {
		t.Error("Expected an active screen entry")
	}
}

func TestActiveSet_PromoteExclusive(t *testing.T) {
	set := NewActiveSet()
	set.Promote(Entry{Name: "webcam-one.mkv", Category: CategoryWebcam})
	set.SetPreviewPath(CategoryWebcam, "/tmp/preview-webcam.mkv")
	set.Promote(Entry{Name: "screen-one.mkv", Category: CategoryScreen})

	revoked := set.PromoteExclusive(Entry{Name: "text-one.txt", Category: CategoryText})
	if len(revoked) != 1 || revoked[0] != "/tmp/preview-webcam.mkv" {
		t.Errorf("PromoteExclusive should revoke previews of cleared categories, got %v", revoked)
	}

	if _, ok := set.Get(CategoryWebcam); ok {
		t.Error("Exclusive promote should clear the webcam entry")
	}
	if _, ok := set.Get(CategoryScreen); ok {
		t.Error("Exclusive promote should clear the screen entry")
	}
	if _, ok := set.Get(CategoryText); !ok {
		t.Error("Exclusive promote should set the text entry")
	}
}

func TestActiveSet_SetTextContent(t *testing.T) {
	set := NewActiveSet()

	// No active entry yet: no-op
	set.SetTextContent(CategoryText, "hello")
	if _, ok := set.Get(CategoryText); ok {
		t.Error("SetTextContent must not create an active entry")
	}

	set.Promote(Entry{Name: "text-one.txt", Category: CategoryText})
	set.SetTextContent(CategoryText, "hello")

	active, _ := set.Get(CategoryText)
	if active.TextContent != "hello" {
		t.Errorf("TextContent = %q, expected %q", active.TextContent, "hello")
	}

	// Superseding clears the decoded content
	set.Promote(Entry{Name: "text-two.txt", Category: CategoryText})
	active, _ = set.Get(CategoryText)
	if active.TextContent != "" {
		t.Errorf("Superseding promote should clear text content, got %q", active.TextContent)
	}
}

func TestActiveSet_ClearIf(t *testing.T) {
	set := NewActiveSet()
	set.Promote(Entry{Name: "screen-one.mkv", Category: CategoryScreen})
	set.SetPreviewPath(CategoryScreen, "/tmp/preview-screen.mkv")

	// Name mismatch: untouched
	if _, cleared := set.ClearIf(CategoryScreen, "screen-other.mkv"); cleared {
		t.Error("ClearIf should not clear a non-matching entry")
	}
	if _, ok := set.Get(CategoryScreen); !ok {
		t.Fatal("Active screen entry should survive a non-matching ClearIf")
	}

	revoked, cleared := set.ClearIf(CategoryScreen, "screen-one.mkv")
	if !cleared {
		t.Error("ClearIf should clear the matching entry")
	}
	if len(revoked) != 1 || revoked[0] != "/tmp/preview-screen.mkv" {
		t.Errorf("ClearIf should revoke the preview path, got %v", revoked)
	}
	if _, ok := set.Get(CategoryScreen); ok {
		t.Error("Screen category should be empty after ClearIf")
	}
}

func TestActiveSet_ClearAll(t *testing.T) {
	set := NewActiveSet()
	set.Promote(Entry{Name: "text-one.txt", Category: CategoryText})
	set.Promote(Entry{Name: "webcam-one.mkv", Category: CategoryWebcam})
	set.SetPreviewPath(CategoryWebcam, "/tmp/preview.mkv")

	revoked := set.ClearAll()
	if len(revoked) != 1 {
		t.Errorf("ClearAll should revoke one preview, got %v", revoked)
	}
	for _, c := range Categories() {
		if _, ok := set.Get(c); ok {
			t.Errorf("Category %s should be empty after ClearAll", c)
		}
	}
}
