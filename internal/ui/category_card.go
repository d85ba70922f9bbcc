package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vaultget/media-vault/internal/model"
)

// CategoryCard is one of the three capture/ingest panels at the top of the
// window. The text card offers an upload action and shows the loaded note's
// content; the media cards offer record/stop and playback of the loaded
// recording.
type CategoryCard struct {
	category     model.Category
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	activeLabel *widget.Label
	statusLabel *widget.Label
	contentView *widget.Label // text category only
	actionBtn   *widget.Button
	playBtn     *widget.Button // media categories only

	container *fyne.Container

	// Callbacks
	onAction func(category model.Category)
	onPlay   func(category model.Category)
}

// NewCategoryCard creates a card for the given category.
func NewCategoryCard(category model.Category, localization *Localization) *CategoryCard {
	cc := &CategoryCard{
		category:     category,
		localization: localization,
	}
	cc.createUI()
	return cc
}

// SetCallbacks sets the action callbacks. onPlay is ignored for the text card.
func (cc *CategoryCard) SetCallbacks(onAction, onPlay func(category model.Category)) {
	cc.onAction = onAction
	cc.onPlay = onPlay
}

// Container returns the card's root canvas object.
func (cc *CategoryCard) Container() fyne.CanvasObject {
	return cc.container
}

// createUI creates the card components
func (cc *CategoryCard) createUI() {
	cc.titleLabel = widget.NewLabel(cc.titleText())
	cc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	cc.activeLabel = widget.NewLabel(cc.localization.GetText(KeyNoActiveEntry))
	cc.activeLabel.Truncation = fyne.TextTruncateEllipsis

	cc.statusLabel = widget.NewLabel("")
	cc.statusLabel.Hide()

	cc.actionBtn = widget.NewButton(cc.actionText(), func() {
		if cc.onAction != nil {
			cc.onAction(cc.category)
		}
	})
	cc.actionBtn.Importance = widget.HighImportance

	buttons := []fyne.CanvasObject{cc.actionBtn}
	if cc.category.IsMedia() {
		cc.playBtn = widget.NewButton(IconPlay+" "+cc.localization.GetText(KeyPlay), func() {
			if cc.onPlay != nil {
				cc.onPlay(cc.category)
			}
		})
		cc.playBtn.Disable()
		buttons = append(buttons, cc.playBtn)
	}

	items := []fyne.CanvasObject{
		cc.titleLabel,
		widget.NewSeparator(),
		cc.activeLabel,
		cc.statusLabel,
		container.NewHBox(buttons...),
	}

	if cc.category == model.CategoryText {
		cc.contentView = widget.NewLabel("")
		cc.contentView.Wrapping = fyne.TextWrapWord
		scroll := container.NewVScroll(cc.contentView)
		scroll.SetMinSize(fyne.NewSize(0, TextContentMinHeight))
		items = append(items, scroll)
	}

	cc.container = container.NewVBox(items...)
}

// SetActive updates the card to display the given active entry. Passing
// ok=false clears the card back to its empty state.
func (cc *CategoryCard) SetActive(ae model.ActiveEntry, ok bool) {
	if !ok {
		cc.activeLabel.SetText(cc.localization.GetText(KeyNoActiveEntry))
		if cc.contentView != nil {
			cc.contentView.SetText("")
		}
		if cc.playBtn != nil {
			cc.playBtn.Disable()
		}
		return
	}

	cc.activeLabel.SetText(ae.Entry.Name + MiddleDotSeparator + ae.Entry.DisplaySize())
	if cc.contentView != nil {
		cc.contentView.SetText(ae.TextContent)
	}
	if cc.playBtn != nil {
		cc.playBtn.Enable()
	}
}

// SetRecordingState reflects the recording session on a media card. The
// action button toggles between record and stop, and is disabled during the
// acquiring and stopping transitions.
func (cc *CategoryCard) SetRecordingState(state model.SessionState, bytesWritten int64) {
	if !cc.category.IsMedia() {
		return
	}

	switch state {
	case model.SessionAcquiring:
		cc.actionBtn.Disable()
		cc.statusLabel.SetText(cc.localization.GetText(KeyAcquiringDevice))
		cc.statusLabel.Show()
	case model.SessionRecording:
		cc.actionBtn.Enable()
		cc.actionBtn.SetText(IconStop + " " + cc.localization.GetText(KeyStop))
		cc.statusLabel.SetText(fmt.Sprintf("%s%s%s",
			IconRecord+" "+cc.localization.GetText(KeyRecordingStarted),
			MiddleDotSeparator,
			model.Entry{Size: bytesWritten}.DisplaySize()))
		cc.statusLabel.Show()
	case model.SessionStopping:
		cc.actionBtn.Disable()
		cc.statusLabel.SetText(cc.localization.GetText(KeyRecordingStopping))
		cc.statusLabel.Show()
	default:
		cc.actionBtn.Enable()
		cc.actionBtn.SetText(cc.actionText())
		cc.statusLabel.SetText("")
		cc.statusLabel.Hide()
	}
}

// SetOtherRecording disables the record button while a recording runs on a
// different category. Only one recording may run at a time.
func (cc *CategoryCard) SetOtherRecording(active bool) {
	if !cc.category.IsMedia() {
		return
	}
	if active {
		cc.actionBtn.Disable()
	} else {
		cc.actionBtn.Enable()
	}
}

// RefreshTexts updates the card labels after a language change.
func (cc *CategoryCard) RefreshTexts() {
	cc.titleLabel.SetText(cc.titleText())
	cc.actionBtn.SetText(cc.actionText())
	if cc.playBtn != nil {
		cc.playBtn.SetText(IconPlay + " " + cc.localization.GetText(KeyPlay))
	}
}

func (cc *CategoryCard) titleText() string {
	switch cc.category {
	case model.CategoryText:
		return IconFile + " " + cc.localization.GetText(KeyTextCard)
	case model.CategoryWebcam:
		return IconRecord + " " + cc.localization.GetText(KeyWebcamCard)
	default:
		return IconRecord + " " + cc.localization.GetText(KeyScreenCard)
	}
}

func (cc *CategoryCard) actionText() string {
	if cc.category == model.CategoryText {
		return cc.localization.GetText(KeyUpload)
	}
	return IconRecord + " " + cc.localization.GetText(KeyRecord)
}
