package view

import (
	"sync"
	"time"
)

// Flash holds a short-lived notice for the status line, such as a failed send.
type Flash struct {
	mu      sync.RWMutex
	message string
	isError bool
	expires time.Time
	now     func() time.Time
}

// Set shows msg for d.
func (f *Flash) Set(msg string, d time.Duration) { f.set(msg, false, d) }

// Error shows msg for d, marked as an error.
func (f *Flash) Error(msg string, d time.Duration) { f.set(msg, true, d) }

func (f *Flash) set(msg string, isError bool, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.message = msg
	f.isError = isError
	f.expires = f.clock().Add(d)
}

// Get returns the current notice and whether it is an error. Both are zero
// once the notice expired.
func (f *Flash) Get() (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.clock().After(f.expires) {
		return "", false
	}
	return f.message, f.isError
}

func (f *Flash) clock() time.Time {
	if f.now != nil {
		return f.now()
	}
	return time.Now()
}
