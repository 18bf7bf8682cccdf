// Package hearts spawns the decorative, self-expiring hearts that float
// behind the player. It never touches playback state.
package hearts

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Heart is one ephemeral background element.
type Heart struct {
	ID       uuid.UUID
	X        float64 // percent of view width, [0,100)
	Y        float64 // percent of view height, [0,100)
	Size     float64
	Duration time.Duration // animation duration
	Born     time.Time
}

// Phase returns how far through its animation the heart is, in [0,1].
func (h Heart) Phase(now time.Time) float64 {
	if h.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(h.Born)) / float64(h.Duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Field is the container hearts live in while they are alive.
type Field struct {
	mu     sync.RWMutex
	hearts []Heart
}

// NewField creates an empty field.
func NewField() *Field {
	return &Field{}
}

// Add appends a heart.
func (f *Field) Add(h Heart) {
	f.mu.Lock()
	f.hearts = append(f.hearts, h)
	f.mu.Unlock()
}

// Remove deletes the heart with the given id. It returns false if the
// heart was already gone.
func (f *Field) Remove(id uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, h := range f.hearts {
		if h.ID == id {
			f.hearts = append(f.hearts[:i], f.hearts[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every heart.
func (f *Field) Clear() {
	f.mu.Lock()
	f.hearts = nil
	f.mu.Unlock()
}

// Len returns the number of live hearts.
func (f *Field) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.hearts)
}

// Snapshot returns a copy of the live hearts, oldest first.
func (f *Field) Snapshot() []Heart {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Heart, len(f.hearts))
	copy(out, f.hearts)
	return out
}
