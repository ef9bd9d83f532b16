package config

import (
	"io"
	"testing"
	"time"
)

func TestParseArgs_URLOnly(t *testing.T) {
	opts, err := ParseArgs([]string{"http://example.com/cam.jpg"}, io.Discard)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if opts.URL != "http://example.com/cam.jpg" {
		t.Errorf("Expected URL to be preserved, got %q", opts.URL)
	}
	if opts.Interval != 0 {
		t.Errorf("Expected zero interval when flag is absent, got %v", opts.Interval)
	}
	if opts.Fullscreen {
		t.Error("Expected fullscreen to default to false")
	}
}

func TestParseArgs_IntervalFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected time.Duration
	}{
		{"short flag", []string{"-n", "2", "http://example.com/a.png"}, 2 * time.Second},
		{"long flag", []string{"-interval", "10", "http://example.com/a.png"}, 10 * time.Second},
		{"fractional seconds", []string{"-n", "0.5", "http://example.com/a.png"}, 500 * time.Millisecond},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			opts, err := ParseArgs(test.args, io.Discard)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if opts.Interval != test.expected {
				t.Errorf("Expected interval %v, got %v", test.expected, opts.Interval)
			}
		})
	}
}

func TestParseArgs_FullscreenFlags(t *testing.T) {
	for _, flagName := range []string{"-f", "-fullscreen"} {
		opts, err := ParseArgs([]string{flagName, "https://example.com/a.png"}, io.Discard)
		if err != nil {
			t.Fatalf("Expected no error for %s, got %v", flagName, err)
		}
		if !opts.Fullscreen {
			t.Errorf("Expected %s to enable fullscreen", flagName)
		}
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", []string{}},
		{"two URLs", []string{"http://a.example.com/x.png", "http://b.example.com/y.png"}},
		{"unsupported scheme", []string{"ftp://example.com/a.png"}},
		{"no host", []string{"http://"}},
		{"negative interval", []string{"-n", "-1", "http://example.com/a.png"}},
		{"unknown flag", []string{"-x", "http://example.com/a.png"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseArgs(test.args, io.Discard); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
