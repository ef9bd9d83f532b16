package watch

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/imgwatch/imgwatch/internal/fetch"
	"github.com/imgwatch/imgwatch/internal/model"
	"github.com/imgwatch/imgwatch/internal/render"
)

// Service drives the refresh loop: once per interval it fetches the source
// URL, decodes the bytes, and replaces the current frame. Source and
// interval are immutable for the life of a run. Failed ticks keep the prior
// frame and never stop the loop.
type Service struct {
	source   string
	interval time.Duration
	fetcher  fetch.Fetcher

	mu      sync.Mutex
	current *model.Frame
	stats   model.Stats
	seq     uint64

	// refresh carries at most one pending out-of-band reload request. A
	// request arriving while a tick is running stays queued and fires
	// right after it, so reloads coalesce instead of piling up.
	refresh chan struct{}

	onFrame func(*model.Frame) // callback for UI updates
	onError func(error)
}

// NewService creates a new refresh service for the given source URL
func NewService(source string, interval time.Duration, fetcher fetch.Fetcher) *Service {
	return &Service{
		source:   source,
		interval: interval,
		fetcher:  fetcher,
		refresh:  make(chan struct{}, 1),
	}
}

// SetFrameCallback sets the callback invoked after each successful tick.
// The callback runs on the service goroutine; UI code must marshal onto the
// toolkit thread itself.
func (s *Service) SetFrameCallback(callback func(*model.Frame)) {
	s.onFrame = callback
}

// SetErrorCallback sets the callback invoked after each failed tick
func (s *Service) SetErrorCallback(callback func(error)) {
	s.onError = callback
}

// Source returns the image source URL
func (s *Service) Source() string {
	return s.source
}

// Interval returns the refresh interval
func (s *Service) Interval() time.Duration {
	return s.interval
}

// CurrentFrame returns the most recent successfully decoded frame
func (s *Service) CurrentFrame() *model.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Stats returns a copy of the running tick counters
func (s *Service) Stats() model.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// RequestRefresh asks the loop for an immediate reload. If a tick is in
// flight the request runs right after it completes; duplicate requests
// collapse into one.
func (s *Service) RequestRefresh() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// Tick performs one fetch+decode+swap cycle. On success the current frame
// is replaced and the frame callback fires; on failure the prior frame is
// retained and the error callback fires. The returned error is the tick's
// outcome, it is never fatal to the loop.
func (s *Service) Tick(ctx context.Context) error {
	start := time.Now()

	data, err := s.fetcher.Fetch(ctx, s.source)
	if err != nil {
		s.recordFailure(model.TickFetchError, err)
		return err
	}

	img, err := render.Decode(data)
	if err != nil {
		s.recordFailure(model.TickDecodeError, err)
		return err
	}

	bounds := img.Bounds()
	frame := &model.Frame{
		ID:        generateFrameID(),
		Source:    s.source,
		Image:     img,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		ByteSize:  len(data),
		FetchedAt: time.Now(),
		Elapsed:   time.Since(start),
	}

	s.mu.Lock()
	s.seq++
	frame.Seq = s.seq
	s.current = frame
	s.stats.Record(model.TickOK, len(data), "")
	s.mu.Unlock()

	log.Printf("frame %s: %s in %v (%d bytes)", frame.ID, frame.SizeString(), frame.Elapsed, frame.ByteSize)

	if s.onFrame != nil {
		s.onFrame(frame)
	}
	return nil
}

// Run drives the recurring refresh until ctx is cancelled. The timer is
// re-armed only after the current tick's work completes, so fetches never
// overlap and slow fetches cannot queue.
func (s *Service) Run(ctx context.Context) {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("refresh loop stopped: %v", ctx.Err())
			return
		case <-timer.C:
		case <-s.refresh:
		}

		if err := s.Tick(ctx); err != nil {
			if ctx.Err() != nil {
				// In-flight fetch abandoned on shutdown.
				return
			}
			log.Printf("tick failed, keeping previous frame: %v", err)
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(s.interval)
	}
}

func (s *Service) recordFailure(status model.TickStatus, err error) {
	s.mu.Lock()
	s.stats.Record(status, 0, err.Error())
	s.mu.Unlock()

	if s.onError != nil {
		s.onError(err)
	}
}

// generateFrameID generates a unique frame ID
func generateFrameID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("frame-%d", time.Now().UnixNano())
	}
	return id.String()
}
