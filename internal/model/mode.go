package model

// DisplayMode represents the presentation state of the viewer window. It
// affects only the target dimensions used when scaling the current frame,
// never the fetch behaviour.
type DisplayMode int

const (
	// ModeWindowed shows the image in a regular desktop window
	ModeWindowed DisplayMode = iota

	// ModeFullscreen shows the image across the whole screen
	ModeFullscreen
)

// String returns the string representation of DisplayMode
func (m DisplayMode) String() string {
	switch m {
	case ModeWindowed:
		return "Windowed"
	case ModeFullscreen:
		return "Fullscreen"
	default:
		return "Unknown"
	}
}

// IsFullscreen returns true if the mode is fullscreen
func (m DisplayMode) IsFullscreen() bool {
	return m == ModeFullscreen
}

// Toggled returns the opposite display mode.
func (m DisplayMode) Toggled() DisplayMode {
	if m == ModeFullscreen {
		return ModeWindowed
	}
	return ModeFullscreen
}
