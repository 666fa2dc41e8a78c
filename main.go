package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/galeria/internal/config"
	"github.com/ytget/galeria/internal/event"
	"github.com/ytget/galeria/internal/logger"
	"github.com/ytget/galeria/internal/scan"
	"github.com/ytget/galeria/internal/thumbnail"
	"github.com/ytget/galeria/internal/ui"
	"github.com/ytget/galeria/internal/watch"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.galeria"
	AppName = "Galeria"

	WindowWidth  = 1024
	WindowHeight = 720
)

func main() {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewGalleryTheme())

	level := myApp.Preferences().StringWithFallback(config.KeyLogLevel, config.DefaultLogLevel)
	log := logger.NewConsole(logger.ParseLevel(level))
	log.Info("Main", "starting", map[string]interface{}{"app": AppName, "version": version})

	settings := config.NewSettings(myApp, log)

	broker := event.NewBroker(event.DefaultQueueSize, fyne.Do, log)
	scanner := scan.NewScanner(broker, log)

	thumbnails, err := thumbnail.NewService(settings.GetThumbnailWorkers(), settings.GetThumbnailCacheSize(), log)
	if err != nil {
		log.Error("Main", "thumbnail service failed", err, nil)
		os.Exit(1)
	}

	deps := ui.Dependencies{
		Events:     broker,
		Scanner:    scanner,
		Thumbnails: thumbnails,
	}

	watcher, err := watch.New(broker, log)
	if err != nil {
		log.Warning("Main", "folder watching unavailable", map[string]interface{}{"error": err.Error()})
	} else {
		deps.Watcher = watcher
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.SetIcon(ui.LoadAppIcon())
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	root, err := ui.NewRootUI(myWindow, myApp, settings, deps, log)
	if err != nil {
		log.Error("Main", "gallery screen failed", err, nil)
		os.Exit(1)
	}

	myApp.Lifecycle().SetOnStopped(func() {
		root.Close()
		if watcher != nil {
			if err := watcher.Close(); err != nil {
				log.Warning("Main", "watcher close failed", map[string]interface{}{"error": err.Error()})
			}
		}
		scanner.Close()
		broker.Close()
		thumbnails.Wait()
		log.Info("Main", "stopped", nil)
	})

	myWindow.ShowAndRun()
}
