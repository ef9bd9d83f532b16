package ui

import (
	"fyne.io/fyne/v2"

	"github.com/imgwatch/imgwatch/internal/model"
)

// onTypedKey handles viewer keyboard input: F or F11 toggles fullscreen,
// Escape leaves fullscreen, R forces an immediate reload, Q quits.
func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyF, fyne.KeyF11:
		ui.ToggleFullScreen()
	case fyne.KeyEscape:
		if ui.mode.IsFullscreen() {
			ui.SetMode(model.ModeWindowed)
		}
	case fyne.KeyR:
		ui.watcher.RequestRefresh()
	case fyne.KeyQ:
		ui.window.Close()
	}
}
