package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/astroview/apod-viewer/internal/config"
	"github.com/astroview/apod-viewer/internal/download"
	"github.com/astroview/apod-viewer/internal/fetch"
	"github.com/astroview/apod-viewer/internal/imgcache"
	"github.com/astroview/apod-viewer/internal/platform"
	"github.com/astroview/apod-viewer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.astroview.apod-viewer"
	AppName = "APOD Viewer"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	fmt.Printf("APOD Viewer v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply the dark photo theme
	myApp.Settings().SetTheme(ui.NewSkyTheme())

	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	saveDir := settings.GetSaveDirectory()
	if err := platform.CreateDirectoryIfNotExists(saveDir); err != nil {
		fmt.Printf("failed to ensure save dir: %v\n", err)
	}

	client := fetch.NewClient(settings.GetAPIKey())
	fetcher := fetch.NewFetcher(client)
	images := imgcache.NewLoader("")
	transfers := download.NewService(saveDir)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, fetcher, images, transfers)

	// Show and run
	myWindow.ShowAndRun()
}
