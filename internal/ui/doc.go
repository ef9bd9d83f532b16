package ui

// Package ui implements the viewer window on top of Fyne: the frame
// surface, the windowed/fullscreen display mode, keyboard and double-tap
// input, and the status overlay. All toolkit types stay behind this
// package; the rest of the app only sees callbacks and the watch.Watcher
// interface.
