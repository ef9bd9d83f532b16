package config

import (
	"flag"
	"fmt"
	"io"
	"net/url"
	"time"
)

// Options holds the command-line configuration for one run. The URL and,
// when given, the interval are immutable for the life of the process.
type Options struct {
	URL        string
	Interval   time.Duration // zero means "use the stored preference"
	Fullscreen bool
}

// ParseArgs parses command-line arguments into Options. Usage errors are
// returned, not printed; output (for -h) goes to w.
func ParseArgs(args []string, w io.Writer) (*Options, error) {
	fs := flag.NewFlagSet("imgwatch", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() {
		fmt.Fprintf(w, "Usage: imgwatch [options] URL\n\nImage viewer that automatically reloads the image at a given interval.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	var intervalSeconds float64
	fs.Float64Var(&intervalSeconds, "n", 0, "seconds to wait between reloads")
	fs.Float64Var(&intervalSeconds, "interval", 0, "seconds to wait between reloads")

	var fullscreen bool
	fs.BoolVar(&fullscreen, "f", false, "start in fullscreen mode")
	fs.BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen mode")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one URL argument, got %d", fs.NArg())
	}

	rawURL := fs.Arg(0)
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	if intervalSeconds < 0 {
		return nil, fmt.Errorf("interval must be positive, got %g", intervalSeconds)
	}

	return &Options{
		URL:        rawURL,
		Interval:   secondsToDuration(intervalSeconds),
		Fullscreen: fullscreen,
	}, nil
}

// validateURL checks that the source is a usable http(s) URL
func validateURL(input string) error {
	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("URL has no host")
	}

	return nil
}
