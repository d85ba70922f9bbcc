package model

import (
	"errors"
	"strings"
)

// Category identifies one of the three kinds of vault entries. The category
// of an entry is encoded solely in its filename prefix.
type Category string

const (
	// CategoryText is a text note imported from a user-chosen file
	CategoryText Category = "text"

	// CategoryWebcam is a camera+microphone recording
	CategoryWebcam Category = "webcam"

	// CategoryScreen is a screen recording (video only)
	CategoryScreen Category = "screen"
)

// File extensions per category. Media entries share one fixed container
// format because the capture pipeline writes to a non-seekable pipe.
const (
	TextExtension  = ".txt"
	MediaExtension = ".mkv"
)

// ErrUnknownCategory is returned when an entry name matches no known prefix.
var ErrUnknownCategory = errors.New("unrecognized entry category")

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryText, CategoryWebcam, CategoryScreen}
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// Prefix returns the filename prefix that marks an entry as belonging to
// this category.
func (c Category) Prefix() string {
	return string(c) + "-"
}

// Extension returns the file extension used for new entries of this category.
func (c Category) Extension() string {
	if c == CategoryText {
		return TextExtension
	}
	return MediaExtension
}

// IsMedia returns true for categories whose entries hold recorded media.
func (c Category) IsMedia() bool {
	return c == CategoryWebcam || c == CategoryScreen
}

// CategoryFromName derives the category of an entry from its name prefix.
// Returns ErrUnknownCategory when the name matches no known prefix.
func CategoryFromName(name string) (Category, error) {
	for _, c := range Categories() {
		if strings.HasPrefix(name, c.Prefix()) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}
