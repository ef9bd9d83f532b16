package config

// Package config combines two configuration surfaces: persistent defaults
// stored through Fyne preferences, and per-run command-line options that
// override them. The URL is never persisted.
