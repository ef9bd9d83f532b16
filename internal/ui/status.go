package ui

import (
	"fmt"

	"github.com/imgwatch/imgwatch/internal/model"
)

// Status timestamp layout
const statusTimeLayout = "15:04:05"

// statusText formats the one-line status overlay. Before the first frame it
// reports the wait, afterwards the frame dimensions, tick counters, and the
// time of the last successful refresh.
func statusText(frame *model.Frame, stats model.Stats) string {
	if frame == nil {
		if stats.Ticks == 0 {
			return "waiting for first frame"
		}
		return fmt.Sprintf("no frame yet | %s | %s", stats.Summary(), stats.LastError)
	}

	text := fmt.Sprintf("%s | %s | %s", frame.SizeString(), stats.Summary(), frame.FetchedAt.Format(statusTimeLayout))
	if stats.LastStatus.IsFailure() {
		text += " | " + stats.LastError
	}
	return text
}
