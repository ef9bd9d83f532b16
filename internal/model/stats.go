package model

import (
	"fmt"
	"time"
)

// Stats holds running counters for the refresh loop. A copy is handed out to
// callers, the watch service owns the mutable instance.
type Stats struct {
	Ticks          uint64
	Successes      uint64
	FetchFailures  uint64
	DecodeFailures uint64
	BytesFetched   int64
	LastStatus     TickStatus
	LastError      string
	LastSuccess    time.Time
}

// Failures returns the total number of failed ticks
func (s Stats) Failures() uint64 {
	return s.FetchFailures + s.DecodeFailures
}

// Record updates the counters for one finished tick.
func (s *Stats) Record(status TickStatus, bytes int, errText string) {
	s.Ticks++
	s.LastStatus = status
	switch status {
	case TickOK:
		s.Successes++
		s.BytesFetched += int64(bytes)
		s.LastError = ""
		s.LastSuccess = time.Now()
	case TickFetchError:
		s.FetchFailures++
		s.LastError = errText
	case TickDecodeError:
		s.DecodeFailures++
		s.LastError = errText
	}
}

// Summary returns a compact one-line description for status display
func (s Stats) Summary() string {
	if s.Failures() == 0 {
		return fmt.Sprintf("tick %d, ok %d", s.Ticks, s.Successes)
	}
	return fmt.Sprintf("tick %d, ok %d, err %d", s.Ticks, s.Successes, s.Failures())
}
