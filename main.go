package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/imgwatch/imgwatch/internal/config"
	"github.com/imgwatch/imgwatch/internal/fetch"
	"github.com/imgwatch/imgwatch/internal/model"
	"github.com/imgwatch/imgwatch/internal/ui"
	"github.com/imgwatch/imgwatch/internal/watch"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.imgwatch.imgwatch"

func main() {
	opts, err := config.ParseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "imgwatch: %v\n", err)
		os.Exit(2)
	}

	log.Printf("ImgWatch v%s starting, source: %s", version, opts.URL)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewBlackTheme())

	settings := config.NewSettings(myApp)

	// Command-line values override stored preferences for this run.
	interval := opts.Interval
	if interval <= 0 {
		interval = settings.GetRefreshInterval()
	}
	fullscreen := opts.Fullscreen || settings.GetStartFullscreen()

	width, height := settings.GetWindowSize()
	myWindow := myApp.NewWindow(ui.AppName)
	myWindow.Resize(fyne.NewSize(float32(width), float32(height)))

	// Initialize services
	client := fetch.NewClient(settings.GetHTTPTimeout())
	watchSvc := watch.NewService(opts.URL, interval, client)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, watchSvc, settings)
	watchSvc.SetFrameCallback(rootUI.OnFrame)
	watchSvc.SetErrorCallback(rootUI.OnError)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// First frame is fetched before the window becomes interactive so a
	// reachable source never shows a blank window. A failure here is
	// transient like any other tick: the black placeholder stays up and
	// the loop keeps trying.
	if err := watchSvc.Tick(ctx); err != nil {
		log.Printf("initial fetch failed, starting with placeholder: %v", err)
	}

	go watchSvc.Run(ctx)

	// Ctrl-C closes the window like a window-close action.
	go func() {
		<-ctx.Done()
		fyne.Do(myWindow.Close)
	}()

	if fullscreen {
		rootUI.SetMode(model.ModeFullscreen)
	}

	// Show and run
	myWindow.ShowAndRun()
	cancel()

	log.Printf("ImgWatch shut down cleanly")
}
