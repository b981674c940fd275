package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/astroview/apod-viewer/internal/config"
	"github.com/astroview/apod-viewer/internal/download"
	"github.com/astroview/apod-viewer/internal/fetch"
	"github.com/astroview/apod-viewer/internal/imgcache"
	"github.com/astroview/apod-viewer/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.astroview.apod-viewer")
	myApp.Settings().SetTheme(ui.NewSkyTheme())
	myWindow := myApp.NewWindow("APOD Viewer")
	myWindow.Resize(fyne.NewSize(420, 760))

	settings := config.NewSettings(myApp)
	fetcher := fetch.NewFetcher(fetch.NewClient(settings.GetAPIKey()))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, fetcher, imgcache.NewLoader(""), download.NewService(settings.GetSaveDirectory()))

	// Show and run
	myWindow.ShowAndRun()
}
