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

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.vaultget.media-vault")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow("Media Vault")

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

	grabber := capture.NewFFmpegGrabber(capture.Options{
		BinaryPath: settings.GetFFmpegPath(),
		FrameRate:  settings.GetCaptureFrameRate(),
		FrameSize:  settings.GetCaptureFrameSize(),
	})
	captureUnavailable := ""
	if err := grabber.Probe(); err != nil {
		captureUnavailable = err.Error()
	}

	rootUI := ui.NewRootUI(
		myWindow,
		myApp,
		vaultStore,
		ingest.NewService(vaultStore),
		capture.NewService(vaultStore, grabber),
		bridge,
		captureUnavailable,
	)
	defer rootUI.Close()

	// Show and run
	myWindow.ShowAndRun()
}
