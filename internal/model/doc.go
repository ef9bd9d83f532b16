package model

// Package model defines domain data structures used across the app: the
// current display frame, the windowed/fullscreen display mode, and per-tick
// refresh statistics. Structures are designed for direct use by the UI and
// explicit state transitions.
