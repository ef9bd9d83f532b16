package watch

// Package watch owns the timer-driven refresh loop and the current frame.
// Exactly one tick is in flight at a time: the timer re-arms only after the
// previous tick's fetch and decode complete.
