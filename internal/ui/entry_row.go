package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vaultget/media-vault/internal/model"
)

// Timestamp format for entry rows
const entryTimeFormat = "2006-01-02 15:04"

// EntryRow represents a compact vault entry row widget
type EntryRow struct {
	widget.BaseWidget

	entry        model.Entry
	localization *Localization

	// UI components
	nameLabel *widget.Label
	metaLabel *widget.Label

	// Action buttons
	loadBtn   *widget.Button
	exportBtn *widget.Button
	deleteBtn *widget.Button

	// Callbacks
	onLoad   func(name string)
	onExport func(name string)
	onDelete func(name string)
}

// NewEntryRow creates a new entry row widget
func NewEntryRow(entry model.Entry, localization *Localization) *EntryRow {
	er := &EntryRow{
		entry:        entry,
		localization: localization,
	}
	er.ExtendBaseWidget(er)
	er.createUI()
	er.updateFromEntry()
	return er
}

// SetCallbacks sets the action callbacks
func (er *EntryRow) SetCallbacks(
	onLoad func(name string),
	onExport func(name string),
	onDelete func(name string),
) {
	if onLoad == nil {
		log.Printf("Warning: onLoad callback is nil for entry %s", er.entry.Name)
	}
	if onExport == nil {
		log.Printf("Warning: onExport callback is nil for entry %s", er.entry.Name)
	}
	if onDelete == nil {
		log.Printf("Warning: onDelete callback is nil for entry %s", er.entry.Name)
	}

	er.onLoad = onLoad
	er.onExport = onExport
	er.onDelete = onDelete
}

// UpdateEntry updates the row with new entry data
func (er *EntryRow) UpdateEntry(entry model.Entry) {
	er.entry = entry
	er.updateFromEntry()
	er.Refresh()
}

// createUI creates the UI components
func (er *EntryRow) createUI() {
	er.nameLabel = widget.NewLabel("")
	er.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	er.nameLabel.Truncation = fyne.TextTruncateEllipsis
	er.nameLabel.Alignment = fyne.TextAlignLeading

	er.metaLabel = widget.NewLabel("")
	er.metaLabel.Alignment = fyne.TextAlignTrailing
	er.metaLabel.TextStyle = fyne.TextStyle{Monospace: true}

	er.loadBtn = widget.NewButton(er.localization.GetText(KeyLoad), func() {
		if er.onLoad != nil {
			er.onLoad(er.entry.Name)
		}
	})
	er.loadBtn.Importance = widget.MediumImportance

	er.exportBtn = widget.NewButton(er.localization.GetText(KeyExport), func() {
		if er.onExport != nil {
			er.onExport(er.entry.Name)
		}
	})
	er.exportBtn.Importance = widget.MediumImportance

	er.deleteBtn = widget.NewButton(IconDelete, func() {
		if er.onDelete != nil {
			er.onDelete(er.entry.Name)
		}
	})
	er.deleteBtn.Importance = widget.LowImportance
}

// updateFromEntry updates UI components based on entry data
func (er *EntryRow) updateFromEntry() {
	icon := IconFile
	if er.entry.Category.IsMedia() {
		icon = IconPlay
	}
	er.nameLabel.SetText(icon + " " + er.entry.Name)

	meta := er.entry.DisplaySize()
	if !er.entry.ModTime.IsZero() {
		meta += MiddleDotSeparator + er.entry.ModTime.Format(entryTimeFormat)
	}
	er.metaLabel.SetText(meta)
}

// CreateRenderer creates the widget renderer
func (er *EntryRow) CreateRenderer() fyne.WidgetRenderer {
	return &entryRowRenderer{entryRow: er}
}

// entryRowRenderer renders the entry row widget
type entryRowRenderer struct {
	entryRow *EntryRow
	layout   *fyne.Container
}

// Layout arranges the components
func (r *entryRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *entryRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *entryRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *entryRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *entryRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *entryRowRenderer) createLayout() {
	er := r.entryRow

	// Fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	actionRow := container.NewHBox(
		er.loadBtn,
		er.exportBtn,
		er.deleteBtn,
	)

	// Meta info sits next to the buttons, name takes the remaining width
	rightCluster := container.NewBorder(nil, nil, nil, actionRow,
		fixedWidth(SizeLabelWidth, er.metaLabel))

	mainContent := container.NewBorder(nil, nil, nil, rightCluster, er.nameLabel)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}
