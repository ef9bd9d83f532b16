package model

import (
	"fmt"
	"image"
	"time"
)

// Frame is the most recently fetched and decoded image. It is replaced
// wholesale on each successful refresh and retained across failed ones, so
// the display never blanks when the source goes away temporarily.
type Frame struct {
	ID        string        // unique frame identifier
	Source    string        // URL the frame was fetched from
	Image     image.Image   // decoded pixels
	Width     int           // decoded width in pixels
	Height    int           // decoded height in pixels
	ByteSize  int           // size of the encoded payload
	Seq       uint64        // monotonic tick counter, 1 for the first frame
	FetchedAt time.Time     // when the fetch completed
	Elapsed   time.Duration // fetch + decode wall time
}

// AspectRatio returns width/height, or 0 for a degenerate frame.
func (f *Frame) AspectRatio() float64 {
	if f.Height <= 0 {
		return 0
	}
	return float64(f.Width) / float64(f.Height)
}

// SizeString returns the frame dimensions as "WxH".
func (f *Frame) SizeString() string {
	return fmt.Sprintf("%dx%d", f.Width, f.Height)
}
