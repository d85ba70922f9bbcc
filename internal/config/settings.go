package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/vaultget/media-vault/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyVaultDir          = "vault_directory"
	KeyExportDir         = "export_directory"
	KeyFFmpegPath        = "ffmpeg_path"
	KeyCaptureFrameRate  = "capture_frame_rate"
	KeyCaptureFrameSize  = "capture_frame_size"
	KeyLanguage          = "app_language"
	KeyAutoPreviewOnLoad = "auto_preview_on_load"
)

// Default values
const (
	DefaultFFmpegPath        = "ffmpeg"
	DefaultCaptureFrameRate  = 30
	DefaultCaptureFrameSize  = "1280x720"
	DefaultLanguage          = "system"
	DefaultAutoPreviewOnLoad = true

	MinCaptureFrameRate = 5
	MaxCaptureFrameRate = 60
)

// VaultDirName is the subdirectory of the app data dir holding entries.
const VaultDirName = "vault"

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetVaultDirectory returns the configured vault root directory
func (s *Settings) GetVaultDirectory() string {
	dir := s.app.Preferences().String(KeyVaultDir)
	if dir == "" {
		dataDir, err := platform.AppDataDir(s.app.UniqueID())
		if err != nil {
			dataDir = filepath.Join("/tmp", s.app.UniqueID())
		}
		dir = filepath.Join(dataDir, VaultDirName)
		s.SetVaultDirectory(dir)
	}
	return dir
}

// SetVaultDirectory sets the vault root directory
func (s *Settings) SetVaultDirectory(dir string) {
	s.app.Preferences().SetString(KeyVaultDir, dir)
}

// GetExportDirectory returns the directory entries are exported to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetFFmpegPath returns the ffmpeg executable used for capture
func (s *Settings) GetFFmpegPath() string {
	path := s.app.Preferences().String(KeyFFmpegPath)
	if path == "" {
		s.SetFFmpegPath(DefaultFFmpegPath)
		return DefaultFFmpegPath
	}
	return path
}

// SetFFmpegPath sets the ffmpeg executable path
func (s *Settings) SetFFmpegPath(path string) {
	if path == "" {
		path = DefaultFFmpegPath
	}
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}

// GetCaptureFrameRate returns the capture frame rate
func (s *Settings) GetCaptureFrameRate() int {
	value := s.app.Preferences().Int(KeyCaptureFrameRate)
	if value <= 0 {
		s.SetCaptureFrameRate(DefaultCaptureFrameRate)
		return DefaultCaptureFrameRate
	}
	return value
}

// SetCaptureFrameRate sets the capture frame rate, clamped to a sane range
func (s *Settings) SetCaptureFrameRate(rate int) {
	if rate < MinCaptureFrameRate {
		rate = MinCaptureFrameRate
	}
	if rate > MaxCaptureFrameRate {
		rate = MaxCaptureFrameRate
	}
	s.app.Preferences().SetInt(KeyCaptureFrameRate, rate)
}

// GetCaptureFrameSize returns the webcam capture frame size
func (s *Settings) GetCaptureFrameSize() string {
	size := s.app.Preferences().String(KeyCaptureFrameSize)
	if size == "" {
		s.SetCaptureFrameSize(DefaultCaptureFrameSize)
		return DefaultCaptureFrameSize
	}
	return size
}

// SetCaptureFrameSize sets the webcam capture frame size
func (s *Settings) SetCaptureFrameSize(size string) {
	if size == "" {
		size = DefaultCaptureFrameSize
	}
	s.app.Preferences().SetString(KeyCaptureFrameSize, size)
}

// GetCaptureFrameSizeOptions returns available frame size options
func (s *Settings) GetCaptureFrameSizeOptions() []string {
	return []string{"640x480", "1280x720", "1920x1080"}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetAutoPreviewOnLoad returns whether loading a media entry opens its
// preview immediately
func (s *Settings) GetAutoPreviewOnLoad() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoPreviewOnLoad, DefaultAutoPreviewOnLoad)
}

// SetAutoPreviewOnLoad sets whether loading a media entry opens its preview
func (s *Settings) SetAutoPreviewOnLoad(autoPreview bool) {
	s.app.Preferences().SetBool(KeyAutoPreviewOnLoad, autoPreview)
}
