package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/vaultget/media-vault/internal/capture"
	"github.com/vaultget/media-vault/internal/config"
	"github.com/vaultget/media-vault/internal/ingest"
	"github.com/vaultget/media-vault/internal/platform"
	"github.com/vaultget/media-vault/internal/preview"
	"github.com/vaultget/media-vault/internal/ui"
	"github.com/vaultget/media-vault/internal/vault"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.vaultget.media-vault"
	AppName = "Media Vault"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)

	// Initialize settings and the vault root
	settings := config.NewSettings(myApp)
	vaultDir := settings.GetVaultDirectory()
	if err := platform.CreateDirectoryIfNotExists(vaultDir); err != nil {
		fmt.Printf("failed to ensure vault dir: %v\n", err)
	}

	vaultStore, err := vault.Open(vaultDir)
	if err != nil {
		fmt.Printf("failed to open vault: %v\n", err)
		return
	}

	bridge, err := preview.NewBridge(vaultStore)
	if err != nil {
		fmt.Printf("failed to create preview bridge: %v\n", err)
		return
	}
	defer bridge.Close()

	ingestSvc := ingest.NewService(vaultStore)

	// Probe the capture backend once at startup. On failure the UI replaces
	// the recording cards with a notice; storage features keep working.
	grabber := capture.NewFFmpegGrabber(capture.Options{
		BinaryPath: settings.GetFFmpegPath(),
		FrameRate:  settings.GetCaptureFrameRate(),
		FrameSize:  settings.GetCaptureFrameSize(),
	})
	captureUnavailable := ""
	if err := grabber.Probe(); err != nil {
		fmt.Printf("capture unavailable: %v\n", err)
		captureUnavailable = err.Error()
	}
	recordSvc := capture.NewService(vaultStore, grabber)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, vaultStore, ingestSvc, recordSvc, bridge, captureUnavailable)
	defer rootUI.Close()

	// Show and run
	myWindow.ShowAndRun()
}
