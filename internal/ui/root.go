package ui

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/vaultget/media-vault/internal/capture"
	"github.com/vaultget/media-vault/internal/config"
	"github.com/vaultget/media-vault/internal/ingest"
	"github.com/vaultget/media-vault/internal/model"
	"github.com/vaultget/media-vault/internal/platform"
	"github.com/vaultget/media-vault/internal/preview"
	"github.com/vaultget/media-vault/internal/vault"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window

	vaultStore *vault.Vault
	ingestSvc  ingest.Ingester
	recordSvc  capture.Recorder
	bridge     *preview.Bridge
	active     *model.ActiveSet

	settings     *config.Settings
	localization *Localization

	// Listing snapshot rendered by the entry list
	entries   []model.Entry
	entryList *widget.List

	cards map[model.Category]*CategoryCard

	watcher *vault.Watcher

	// Capture backend probe result; empty when capture is available
	captureUnavailable string

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI. captureUnavailable carries
// the probe failure reason when the recording backend is missing; the media
// cards are then replaced by a static notice while storage keeps working.
func NewRootUI(
	window fyne.Window,
	app fyne.App,
	vaultStore *vault.Vault,
	ingestSvc ingest.Ingester,
	recordSvc capture.Recorder,
	bridge *preview.Bridge,
	captureUnavailable string,
) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:             window,
		vaultStore:         vaultStore,
		ingestSvc:          ingestSvc,
		recordSvc:          recordSvc,
		bridge:             bridge,
		active:             model.NewActiveSet(),
		settings:           settings,
		localization:       localization,
		cards:              make(map[model.Category]*CategoryCard),
		captureUnavailable: captureUnavailable,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callbacks for service updates
	ui.ingestSvc.SetUpdateCallback(ui.onIngestUpdate)
	if ui.recordSvc != nil {
		ui.recordSvc.SetUpdateCallback(ui.onRecordingUpdate)
	}

	ui.setupUI()

	// Watch the vault so external churn refreshes the listing
	watcher, err := vaultStore.Watch(ui.onVaultChanged)
	if err != nil {
		log.Printf("Vault watcher unavailable: %v", err)
	} else {
		ui.watcher = watcher
	}

	ui.refreshEntries()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create category cards
	for _, c := range model.Categories() {
		card := NewCategoryCard(c, ui.localization)
		card.SetCallbacks(ui.onCardAction, ui.onCardPlay)
		ui.cards[c] = card
	}

	var cardRow fyne.CanvasObject
	if ui.captureUnavailable != "" {
		// Capture probe failed: text ingestion stays, recording is replaced
		// by the unavailability notice
		cardRow = container.NewGridWithColumns(2,
			ui.cards[model.CategoryText].Container(),
			NewUnsupportedNotice(ui.localization, ui.captureUnavailable),
		)
	} else {
		cardRow = container.NewGridWithColumns(3,
			ui.cards[model.CategoryText].Container(),
			ui.cards[model.CategoryWebcam].Container(),
			ui.cards[model.CategoryScreen].Container(),
		)
	}

	// Create notification panel under the cards (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Settings button next to the listing header
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	listHeader := widget.NewLabel(ui.localization.GetText(KeyVaultEntries))
	listHeader.TextStyle = fyne.TextStyle{Bold: true}
	headerRow := container.NewBorder(nil, nil, listHeader, settingsBtn)

	topCombined := container.NewVBox(cardRow, ui.notificationContainer, widget.NewSeparator(), headerRow)

	// Create entry list
	ui.entryList = widget.NewList(
		func() int {
			return len(ui.entries)
		},
		func() fyne.CanvasObject { return ui.createEntryItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateEntryItem(id, obj) },
	)

	content := container.NewBorder(
		topCombined,  // top
		nil,          // bottom
		nil,          // left
		nil,          // right
		ui.entryList, // center
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	for _, card := range ui.cards {
		card.RefreshTexts()
	}

	// Refresh entry list to update button texts
	ui.entryList.Refresh()
}

// Close releases UI-held resources.
func (ui *RootUI) Close() {
	if ui.watcher != nil {
		ui.watcher.Close()
	}
}

// createEntryItem creates a new entry row widget for the list
func (ui *RootUI) createEntryItem() fyne.CanvasObject {
	placeholder := model.Entry{Name: "placeholder", Category: model.CategoryText}
	row := NewEntryRow(placeholder, ui.localization)
	row.SetCallbacks(ui.onLoadEntry, ui.onExportEntry, ui.onDeleteEntry)
	return row
}

// updateEntryItem updates a list row with current entry data
func (ui *RootUI) updateEntryItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.entries) {
		return
	}

	if row, ok := item.(*EntryRow); ok {
		row.SetCallbacks(ui.onLoadEntry, ui.onExportEntry, ui.onDeleteEntry)
		row.UpdateEntry(ui.entries[id])
	}
}

// onCardAction dispatches the card's primary button: upload for the text
// card, record toggle for the media cards.
func (ui *RootUI) onCardAction(category model.Category) {
	if category == model.CategoryText {
		ui.onUploadText()
		return
	}

	if ui.recordSvc == nil {
		return
	}

	if ui.recordSvc.State() == model.SessionRecording {
		ui.onStopRecording()
	} else {
		ui.onStartRecording(category)
	}
}

// onUploadText opens the file picker and ingests the chosen text file.
// Cancelling the picker is a silent no-op.
func (ui *RootUI) onUploadText() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
			return
		}
		if reader == nil {
			return // user cancelled
		}
		sourcePath := reader.URI().Path()
		reader.Close()

		ui.showNotification(ui.localization.GetText(KeyImportingFile), true)

		go func() {
			entry, err := ui.ingestSvc.Ingest(sourcePath)
			if err != nil {
				log.Printf("Ingest failed for %s: %v", sourcePath, err)
				ui.showNotification(ui.localization.GetText(KeyErrorReadingFile)+": "+err.Error(), false)
				return
			}

			// The stored copy is what the active view shows, not the source
			data, err := ui.vaultStore.ReadFile(entry.Name)
			if err != nil {
				log.Printf("Failed to read back %s: %v", entry.Name, err)
				ui.showNotification(ui.localization.GetText(KeyErrorReadingFile)+": "+err.Error(), false)
				return
			}

			ui.active.Promote(entry)
			ui.active.SetTextContent(model.CategoryText, string(data))

			fyne.Do(func() {
				ui.refreshCard(model.CategoryText)
				ui.refreshEntries()
				ui.showNotification(ui.localization.GetText(KeyImportCompleted), false)
			})
		}()
	}, ui.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{model.TextExtension}))
	fileDialog.Show()
}

// onStartRecording starts a recording for the category in the background
func (ui *RootUI) onStartRecording(category model.Category) {
	ui.showNotification(ui.localization.GetText(KeyAcquiringDevice), true)

	go func() {
		if err := ui.recordSvc.Start(category); err != nil {
			log.Printf("Failed to start %s recording: %v", category, err)
			if errors.Is(err, capture.ErrRecordingActive) {
				ui.showNotification(ui.localization.GetText(KeyRecordingActive), false)
			} else {
				ui.showNotification(ui.localization.GetText(KeyRecordingFailed)+": "+err.Error(), false)
			}
		}
	}()
}

// onStopRecording finalizes the active recording and promotes the committed
// entry to active for its category.
func (ui *RootUI) onStopRecording() {
	go func() {
		entry, err := ui.recordSvc.Stop()
		if err != nil {
			log.Printf("Failed to stop recording: %v", err)
			ui.showNotification(ui.localization.GetText(KeyRecordingFailed)+": "+err.Error(), false)
			return
		}
		if entry.Name == "" {
			return // nothing was recording
		}

		ui.active.Promote(entry)
		ui.bridge.Revoke(entry.Category)

		fyne.Do(func() {
			ui.refreshCard(entry.Category)
			ui.refreshEntries()
			ui.showNotification(ui.localization.GetText(KeyRecordingSaved)+": "+entry.Name, false)
		})

		// System notification, like a completed download
		fyne.CurrentApp().SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyRecordingSaved),
			Content: entry.DisplayTitle(),
		})
	}()
}

// onCardPlay opens the category's loaded recording with the default player.
// The preview copy is materialized lazily on first playback.
func (ui *RootUI) onCardPlay(category model.Category) {
	ae, ok := ui.active.Get(category)
	if !ok {
		return
	}

	go func() {
		path := ae.PreviewPath
		if path == "" {
			materialized, err := ui.bridge.Preview(ae.Entry)
			if err != nil {
				log.Printf("Failed to materialize preview for %s: %v", ae.Entry.Name, err)
				ui.showNotification(ui.localization.GetText(KeyErrorReadingFile)+": "+err.Error(), false)
				return
			}
			path = materialized
			ui.active.SetPreviewPath(category, path)
		}

		if err := platform.OpenFileWithDefaultApp(path); err != nil {
			log.Printf("Failed to open preview %s: %v", path, err)
			ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
		}
	}()
}

// onLoadEntry makes the named entry active. Loading is exclusive: the other
// categories' active entries are cleared and their previews revoked.
func (ui *RootUI) onLoadEntry(name string) {
	category, err := model.CategoryFromName(name)
	if err != nil {
		log.Printf("Cannot load %s: %v", name, err)
		ui.showNotification(ui.localization.GetText(KeyUnrecognizedEntry)+": "+name, false)
		return
	}

	entry, err := ui.vaultStore.Stat(name)
	if err != nil {
		log.Printf("Cannot load %s: %v", name, err)
		if errors.Is(err, vault.ErrNotFound) {
			ui.showNotification(ui.localization.GetText(KeyEntryNotFound)+": "+name, false)
			ui.refreshEntries()
		} else {
			ui.showNotification(ui.localization.GetText(KeyErrorReadingFile)+": "+err.Error(), false)
		}
		return
	}

	ui.active.PromoteExclusive(entry)
	ui.bridge.RevokeAll()

	go func() {
		if category == model.CategoryText {
			data, err := ui.vaultStore.ReadFile(entry.Name)
			if err != nil {
				log.Printf("Failed to read %s: %v", entry.Name, err)
				ui.showNotification(ui.localization.GetText(KeyErrorReadingFile)+": "+err.Error(), false)
			} else {
				ui.active.SetTextContent(category, string(data))
			}
		} else if ui.settings.GetAutoPreviewOnLoad() {
			path, err := ui.bridge.Preview(entry)
			if err != nil {
				log.Printf("Failed to materialize preview for %s: %v", entry.Name, err)
			} else {
				ui.active.SetPreviewPath(category, path)
				if err := platform.OpenFileWithDefaultApp(path); err != nil {
					log.Printf("Failed to open preview %s: %v", path, err)
				}
			}
		}

		fyne.Do(func() {
			ui.refreshAllCards()
		})
	}()
}

// onExportEntry copies the entry into the configured export directory
func (ui *RootUI) onExportEntry(name string) {
	entry, err := ui.vaultStore.Stat(name)
	if err != nil {
		log.Printf("Cannot export %s: %v", name, err)
		if errors.Is(err, vault.ErrNotFound) {
			ui.showNotification(ui.localization.GetText(KeyEntryNotFound)+": "+name, false)
			ui.refreshEntries()
		} else {
			ui.showNotification(ui.localization.GetText(KeyErrorReadingFile)+": "+err.Error(), false)
		}
		return
	}

	go func() {
		path, err := ui.bridge.Export(entry, ui.settings.GetExportDirectory())
		if err != nil {
			log.Printf("Export of %s failed: %v", name, err)
			ui.showNotification(ui.localization.GetText(KeyErrorReadingFile)+": "+err.Error(), false)
			return
		}
		ui.showNotification(ui.localization.GetText(KeyExportCompleted)+" "+path, false)
	}()
}

// onDeleteEntry removes the entry from the vault. When the deleted entry was
// active for its category the card is cleared and its preview revoked.
func (ui *RootUI) onDeleteEntry(name string) {
	if err := ui.vaultStore.Remove(name); err != nil {
		log.Printf("Delete of %s failed: %v", name, err)
		if errors.Is(err, vault.ErrNotFound) {
			ui.showNotification(ui.localization.GetText(KeyEntryNotFound)+": "+name, false)
			ui.refreshEntries()
		} else {
			ui.showNotification("Error: "+err.Error(), false)
		}
		return
	}

	if category, err := model.CategoryFromName(name); err == nil {
		if _, cleared := ui.active.ClearIf(category, name); cleared {
			ui.bridge.Revoke(category)
			ui.refreshCard(category)
		}
	}

	ui.refreshEntries()
	ui.showNotification(ui.localization.GetText(KeyEntryDeleted)+": "+name, false)
}

// onVaultChanged runs on the watcher goroutine when entries appear or vanish
func (ui *RootUI) onVaultChanged() {
	fyne.Do(func() {
		ui.refreshEntries()
	})
}

// refreshEntries re-reads the vault listing and refreshes the list widget
func (ui *RootUI) refreshEntries() {
	entries, err := ui.vaultStore.List()
	if err != nil {
		log.Printf("Failed to list vault: %v", err)
		return
	}
	ui.entries = entries
	ui.entryList.Refresh()
}

// refreshCard syncs one card with the active-entry set
func (ui *RootUI) refreshCard(category model.Category) {
	card, ok := ui.cards[category]
	if !ok {
		return
	}
	ae, exists := ui.active.Get(category)
	card.SetActive(ae, exists)
}

// refreshAllCards syncs every card with the active-entry set
func (ui *RootUI) refreshAllCards() {
	for _, c := range model.Categories() {
		ui.refreshCard(c)
	}
}

// onRecordingUpdate handles session updates from the recording service
func (ui *RootUI) onRecordingUpdate(update capture.Update) {
	fyne.Do(func() {
		if card, ok := ui.cards[update.Category]; ok {
			card.SetRecordingState(update.State, update.BytesWritten)
		}

		// While one category records, the other media card cannot start
		recording := update.State.IsActive()
		for _, c := range model.Categories() {
			if !c.IsMedia() || c == update.Category {
				continue
			}
			if card, ok := ui.cards[c]; ok {
				card.SetOtherRecording(recording)
			}
		}

		if update.LastError != "" {
			ui.showNotification(ui.localization.GetText(KeyRecordingFailed)+": "+update.LastError, false)
		} else if update.State == model.SessionRecording {
			ui.hideNotification()
		}
	})
}

// onIngestUpdate handles task updates from the ingestion service
func (ui *RootUI) onIngestUpdate(task *model.IngestTask) {
	if task.Status != model.TaskStatusWriting {
		return
	}

	// Debounce progress updates; sub-chunk writes arrive far faster than
	// the panel needs to repaint
	ui.uiUpdateMutex.Lock()
	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < ListRefreshDebounce {
		ui.uiUpdateMutex.Unlock()
		return
	}
	ui.lastUIUpdate = now
	ui.uiUpdateMutex.Unlock()

	message := fmt.Sprintf("%s %d/%d B",
		ui.localization.GetText(KeyImportingFile), task.BytesWritten, task.BytesTotal)
	ui.showNotification(message, true)
}

// showNotification displays a message in the notification panel under the
// cards. When spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}
