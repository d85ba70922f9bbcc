package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NewUnsupportedNotice builds a static notice shown in place of the capture
// cards when the recording backend is unavailable. Storage features keep
// working, only capture is disabled.
func NewUnsupportedNotice(localization *Localization, reason string) fyne.CanvasObject {
	title := widget.NewLabel(IconError + " " + localization.GetText(KeyUnsupportedTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	details := widget.NewLabel(localization.GetText(KeyUnsupportedDetails))
	details.Wrapping = fyne.TextWrapWord
	details.Alignment = fyne.TextAlignCenter

	content := []fyne.CanvasObject{title, details}
	if reason != "" {
		reasonLabel := widget.NewLabel(reason)
		reasonLabel.Wrapping = fyne.TextWrapWord
		reasonLabel.Alignment = fyne.TextAlignCenter
		reasonLabel.TextStyle = fyne.TextStyle{Italic: true}
		content = append(content, reasonLabel)
	}

	return container.NewVBox(content...)
}
