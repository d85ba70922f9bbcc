package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/vaultget/media-vault/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	vaultDirEntry    *widget.Entry
	exportDirEntry   *widget.Entry
	ffmpegPathEntry  *widget.Entry
	frameRateEntry   *widget.Entry
	frameSizeSelect  *widget.Select
	languageSelect   *widget.Select
	autoPreviewCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Vault directory selection
	sd.vaultDirEntry = widget.NewEntry()
	sd.vaultDirEntry.SetPlaceHolder("Vault directory path")
	browseVaultBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), func() {
		sd.onBrowseDirectory(sd.vaultDirEntry)
	})
	vaultDirRow := container.NewBorder(nil, nil, nil, browseVaultBtn, sd.vaultDirEntry)

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	sd.exportDirEntry.SetPlaceHolder("Export directory path")
	browseExportBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), func() {
		sd.onBrowseDirectory(sd.exportDirEntry)
	})
	exportDirRow := container.NewBorder(nil, nil, nil, browseExportBtn, sd.exportDirEntry)

	// FFmpeg path
	sd.ffmpegPathEntry = widget.NewEntry()
	sd.ffmpegPathEntry.SetPlaceHolder(config.DefaultFFmpegPath)

	// Capture frame rate
	sd.frameRateEntry = widget.NewEntry()
	sd.frameRateEntry.SetPlaceHolder(strconv.Itoa(config.MinCaptureFrameRate) + "-" + strconv.Itoa(config.MaxCaptureFrameRate))

	// Webcam frame size selection
	sd.frameSizeSelect = widget.NewSelect(sd.settings.GetCaptureFrameSizeOptions(), nil)

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Auto preview toggle
	sd.autoPreviewCheck = widget.NewCheck(sd.localization.GetText(KeyAutoPreview), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Storage Settings"),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyVaultDirectory)+":"),
		vaultDirRow,

		widget.NewLabel(sd.localization.GetText(KeyExportDirectory)+":"),
		exportDirRow,

		widget.NewSeparator(),
		widget.NewLabel("Capture Settings"),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyFFmpegPath)+":"),
		sd.ffmpegPathEntry,

		widget.NewLabel(sd.localization.GetText(KeyFrameRate)+":"),
		sd.frameRateEntry,

		widget.NewLabel(sd.localization.GetText(KeyFrameSize)+":"),
		sd.frameSizeSelect,

		widget.NewSeparator(),
		widget.NewLabel("Interface Settings"),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		sd.autoPreviewCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.vaultDirEntry.SetText(sd.settings.GetVaultDirectory())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.ffmpegPathEntry.SetText(sd.settings.GetFFmpegPath())
	sd.frameRateEntry.SetText(strconv.Itoa(sd.settings.GetCaptureFrameRate()))
	sd.frameSizeSelect.SetSelected(sd.settings.GetCaptureFrameSize())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.autoPreviewCheck.SetChecked(sd.settings.GetAutoPreviewOnLoad())
}

// onBrowseDirectory handles directory browsing into the given entry
func (sd *SettingsDialog) onBrowseDirectory(target *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		target.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.vaultDirEntry.Text != "" {
		sd.settings.SetVaultDirectory(sd.vaultDirEntry.Text)
	}

	if sd.exportDirEntry.Text != "" {
		sd.settings.SetExportDirectory(sd.exportDirEntry.Text)
	}

	sd.settings.SetFFmpegPath(sd.ffmpegPathEntry.Text)

	if sd.frameRateEntry.Text != "" {
		if rate, err := strconv.Atoi(sd.frameRateEntry.Text); err == nil {
			sd.settings.SetCaptureFrameRate(rate)
		}
	}

	if sd.frameSizeSelect.Selected != "" {
		sd.settings.SetCaptureFrameSize(sd.frameSizeSelect.Selected)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetAutoPreviewOnLoad(sd.autoPreviewCheck.Checked)

	// Show confirmation
	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
