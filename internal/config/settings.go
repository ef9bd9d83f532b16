package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyRefreshInterval = "refresh_interval_seconds"
	KeyHTTPTimeout     = "http_timeout_seconds"
	KeyStartFullscreen = "start_fullscreen"
	KeyWindowWidth     = "window_width"
	KeyWindowHeight    = "window_height"
	KeyShowStatus      = "show_status_line"
)

// Default values
const (
	DefaultRefreshSeconds = 5.0
	DefaultTimeoutSeconds = 15.0
	DefaultWindowWidth    = 1280
	DefaultWindowHeight   = 720
	DefaultShowStatus     = true
)

// Clamping bounds
const (
	MinRefreshSeconds = 0.1
	MaxRefreshSeconds = 3600.0
	MinTimeoutSeconds = 1.0
	MaxTimeoutSeconds = 300.0
	MinWindowEdge     = 200
	MaxWindowEdge     = 8192
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetRefreshInterval returns the configured refresh interval
func (s *Settings) GetRefreshInterval() time.Duration {
	seconds := s.app.Preferences().Float(KeyRefreshInterval)
	if seconds <= 0 {
		s.SetRefreshInterval(secondsToDuration(DefaultRefreshSeconds))
		return secondsToDuration(DefaultRefreshSeconds)
	}
	return secondsToDuration(seconds)
}

// SetRefreshInterval sets the refresh interval, clamped to a sane range
func (s *Settings) SetRefreshInterval(interval time.Duration) {
	seconds := interval.Seconds()
	if seconds < MinRefreshSeconds {
		seconds = MinRefreshSeconds
	}
	if seconds > MaxRefreshSeconds {
		seconds = MaxRefreshSeconds
	}
	s.app.Preferences().SetFloat(KeyRefreshInterval, seconds)
}

// GetHTTPTimeout returns the per-request timeout for image fetches
func (s *Settings) GetHTTPTimeout() time.Duration {
	seconds := s.app.Preferences().Float(KeyHTTPTimeout)
	if seconds <= 0 {
		s.SetHTTPTimeout(secondsToDuration(DefaultTimeoutSeconds))
		return secondsToDuration(DefaultTimeoutSeconds)
	}
	return secondsToDuration(seconds)
}

// SetHTTPTimeout sets the per-request timeout, clamped to a sane range
func (s *Settings) SetHTTPTimeout(timeout time.Duration) {
	seconds := timeout.Seconds()
	if seconds < MinTimeoutSeconds {
		seconds = MinTimeoutSeconds
	}
	if seconds > MaxTimeoutSeconds {
		seconds = MaxTimeoutSeconds
	}
	s.app.Preferences().SetFloat(KeyHTTPTimeout, seconds)
}

// GetStartFullscreen returns whether the viewer starts in fullscreen mode
func (s *Settings) GetStartFullscreen() bool {
	return s.app.Preferences().BoolWithFallback(KeyStartFullscreen, false)
}

// SetStartFullscreen sets whether the viewer starts in fullscreen mode
func (s *Settings) SetStartFullscreen(fullscreen bool) {
	s.app.Preferences().SetBool(KeyStartFullscreen, fullscreen)
}

// GetWindowSize returns the initial window size
func (s *Settings) GetWindowSize() (int, int) {
	width := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return clampEdge(width), clampEdge(height)
}

// SetWindowSize stores the window size for the next run
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, clampEdge(width))
	s.app.Preferences().SetInt(KeyWindowHeight, clampEdge(height))
}

// GetShowStatus returns whether the status overlay is shown
func (s *Settings) GetShowStatus() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowStatus, DefaultShowStatus)
}

// SetShowStatus sets whether the status overlay is shown
func (s *Settings) SetShowStatus(show bool) {
	s.app.Preferences().SetBool(KeyShowStatus, show)
}

func clampEdge(edge int) int {
	if edge < MinWindowEdge {
		return MinWindowEdge
	}
	if edge > MaxWindowEdge {
		return MaxWindowEdge
	}
	return edge
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
