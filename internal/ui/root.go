package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/imgwatch/imgwatch/internal/config"
	"github.com/imgwatch/imgwatch/internal/model"
	"github.com/imgwatch/imgwatch/internal/render"
	"github.com/imgwatch/imgwatch/internal/watch"
)

// AppName is the window title prefix
const AppName = "ImgWatch"

// RootUI owns the viewer window: the frame surface, the display mode, the
// optional status overlay, and all input handling. Frames arrive from the
// watch service goroutine and are applied on the toolkit thread.
type RootUI struct {
	window   fyne.Window
	watcher  watch.Watcher
	settings *config.Settings

	area        *frameArea
	statusLabel *widget.Label

	// mode and lastSize are touched only on the toolkit thread.
	mode     model.DisplayMode
	lastSize fyne.Size
}

// NewRootUI creates and initializes the viewer window contents
func NewRootUI(window fyne.Window, watcher watch.Watcher, settings *config.Settings) *RootUI {
	ui := &RootUI{
		window:   window,
		watcher:  watcher,
		settings: settings,
		mode:     model.ModeWindowed,
	}

	window.SetTitle(fmt.Sprintf("%s - %s", AppName, watcher.Source()))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.area = newFrameArea(ui.onAreaResize, ui.ToggleFullScreen)

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.TextStyle = fyne.TextStyle{Monospace: true}
	if !ui.settings.GetShowStatus() {
		ui.statusLabel.Hide()
	}

	statusBar := container.NewHBox(ui.statusLabel, layout.NewSpacer())
	overlay := container.NewVBox(layout.NewSpacer(), statusBar)

	ui.window.SetContent(container.NewStack(ui.area, overlay))
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)

	// Persist the windowed size for the next run before closing.
	ui.window.SetCloseIntercept(func() {
		if !ui.mode.IsFullscreen() {
			size := ui.window.Canvas().Size()
			ui.settings.SetWindowSize(int(size.Width), int(size.Height))
		}
		ui.window.Close()
	})

	ui.refreshStatus()
}

// Mode returns the current display mode
func (ui *RootUI) Mode() model.DisplayMode {
	return ui.mode
}

// SetMode switches between windowed and fullscreen presentation. The
// existing frame is rescaled immediately, no new fetch is needed.
func (ui *RootUI) SetMode(mode model.DisplayMode) {
	if ui.mode == mode {
		return
	}
	ui.mode = mode
	log.Printf("display mode: %s", mode)
	ui.window.SetFullScreen(mode.IsFullscreen())
	ui.repaint()
}

// ToggleFullScreen flips the display mode
func (ui *RootUI) ToggleFullScreen() {
	ui.SetMode(ui.mode.Toggled())
}

// OnFrame is the watch service frame callback. It runs on the service
// goroutine and marshals the repaint onto the toolkit thread.
func (ui *RootUI) OnFrame(_ *model.Frame) {
	fyne.Do(func() {
		ui.repaint()
		ui.refreshStatus()
	})
}

// OnError is the watch service error callback. The prior frame stays on
// screen, only the status line changes.
func (ui *RootUI) OnError(err error) {
	log.Printf("refresh error: %v", err)
	fyne.Do(ui.refreshStatus)
}

// onAreaResize recomposes the current frame for the new surface bounds
func (ui *RootUI) onAreaResize(size fyne.Size) {
	ui.lastSize = size
	ui.repaint()
}

// repaint composes the current frame for the surface size and applies it.
// With no frame yet the surface stays black.
func (ui *RootUI) repaint() {
	frame := ui.watcher.CurrentFrame()
	if frame == nil {
		return
	}

	size := ui.lastSize
	if size.Width < 1 || size.Height < 1 {
		size = ui.window.Canvas().Size()
	}
	if size.Width < 1 || size.Height < 1 {
		return
	}

	composed := render.Letterbox(frame.Image, int(size.Width), int(size.Height))
	ui.area.SetFrame(composed)
}

// refreshStatus updates the status overlay text
func (ui *RootUI) refreshStatus() {
	if ui.statusLabel.Hidden {
		return
	}
	ui.statusLabel.SetText(statusText(ui.watcher.CurrentFrame(), ui.watcher.Stats()))
}
