package model

import "testing"

func TestEntry_Token(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		expected string
	}{
		{"text-0190b3f2-aaaa.txt", CategoryText, "0190b3f2-aaaa"},
		{"webcam-0190b3f2-bbbb.mkv", CategoryWebcam, "0190b3f2-bbbb"},
		{"screen-noext", CategoryScreen, "noext"},
	}

	for _, test := range tests {
		entry := Entry{Name: test.name, Category: test.category}
		if token := entry.Token(); token != test.expected {
			t.Errorf("Token() for %q = %q, expected %q", test.name, token, test.expected)
		}
	}
}

func TestEntry_DisplaySize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024, "5.0 KiB"},
		{3 * 1024 * 1024, "3.0 MiB"},
		{2 * 1024 * 1024 * 1024, "2.0 GiB"},
	}

	for _, test := range tests {
		entry := Entry{Size: test.size}
		if got := entry.DisplaySize(); got != test.expected {
			t.Errorf("DisplaySize() with size=%d = %s, expected %s", test.size, got, test.expected)
		}
	}
}
