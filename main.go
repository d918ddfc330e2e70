package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/ghumakkad/ghumakkad-desktop/internal/api"
	"github.com/ghumakkad/ghumakkad-desktop/internal/config"
	"github.com/ghumakkad/ghumakkad-desktop/internal/data"
	"github.com/ghumakkad/ghumakkad-desktop/internal/notify"
	"github.com/ghumakkad/ghumakkad-desktop/internal/session"
	"github.com/ghumakkad/ghumakkad-desktop/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ghumakkad.desktop"
	AppName = "Ghumakkad"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	log = log.Level(config.LoadEnv(log))
	log.Info().Str("version", version).Msg("starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewTravelTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)

	// Initialize services
	settings := config.NewSettings(myApp)
	sess := session.NewStore(myApp)
	client := api.New(settings.APIBaseURL(), sess, log)
	notes := notify.NewQueue()
	svc := data.NewService(client, notes, log)

	// Create and setup UI
	root := ui.NewRootUI(myApp, myWindow, settings, sess, client, svc, notes, log)
	root.Start()

	myWindow.ShowAndRun()

	svc.Close()
	notes.Close()
	log.Info().Msg("shutdown complete")
}
