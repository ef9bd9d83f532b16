package watch

import (
	"github.com/imgwatch/imgwatch/internal/model"
)

// Watcher defines the interface the UI consumes from the refresh service.
type Watcher interface {
	// CurrentFrame returns the most recent successfully decoded frame,
	// or nil before the first success.
	CurrentFrame() *model.Frame

	// Stats returns a copy of the running tick counters.
	Stats() model.Stats

	// RequestRefresh asks for an immediate out-of-band tick.
	RequestRefresh()

	// Source returns the immutable image source URL.
	Source() string
}
