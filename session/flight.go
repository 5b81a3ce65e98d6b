package session

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Flight allows at most one advice request at a time.
//
// The zero value is not usable, use NewFlight.
type Flight struct {
	sem      *semaphore.Weighted
	inFlight atomic.Bool
}

// NewFlight returns an idle Flight.
func NewFlight() *Flight {
	return &Flight{sem: semaphore.NewWeighted(1)}
}

// TryStart reports whether the caller may start a request. When it returns
// true the caller must call Done once the request is over.
func (f *Flight) TryStart() bool {
	if !f.sem.TryAcquire(1) {
		return false
	}
	f.inFlight.Store(true)
	return true
}

// Done ends the current request.
func (f *Flight) Done() {
	f.inFlight.Store(false)
	f.sem.Release(1)
}

// InFlight reports whether a request is in progress.
func (f *Flight) InFlight() bool { return f.inFlight.Load() }
