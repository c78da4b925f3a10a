package store

import (
	"sync"
	"time"

	"distress-relay-api/internal/model"
)

// Signals is the distress signal board. A signal is open while it is present
// here and closed the moment it is removed; nothing expires on its own, the
// raiser (or whoever answers) has to close it explicitly.
type Signals struct {
	mu   sync.Mutex
	open map[string]*model.DistressSignal
}

func NewSignals() *Signals {
	return &Signals{open: make(map[string]*model.DistressSignal)}
}

// Add opens a signal. The response count always starts at zero.
func (b *Signals) Add(sig *model.DistressSignal) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cp := *sig
	cp.RespondCount = 0
	cp.RaisedAt = time.Now()
	b.open[cp.ID] = &cp
}

// Remove closes a signal. Removing an already-closed or unknown signal
// reports ErrSignalNotFound rather than pretending it worked.
func (b *Signals) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.open[id]; !ok {
		return ErrSignalNotFound
	}
	delete(b.open, id)
	return nil
}

// Respond records one responder answering the signal and returns the new
// count. Increments serialize through the board lock, so simultaneous
// responders are never lost. There is no cap and no dedupe.
func (b *Signals) Respond(id string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sig, ok := b.open[id]
	if !ok {
		return 0, ErrSignalNotFound
	}
	sig.RespondCount++
	return sig.RespondCount, nil
}

// PeekAny returns the id of an arbitrary open signal, as a cheap "is anything
// active" probe.
func (b *Signals) PeekAny() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id := range b.open {
		return id, nil
	}
	return "", ErrNoActiveSignal
}

// StatusOf echoes the id back if the signal is still open.
func (b *Signals) StatusOf(id string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.open[id]; !ok {
		return "", ErrSignalNotFound
	}
	return id, nil
}

// Get returns a copy of an open signal.
func (b *Signals) Get(id string) (*model.DistressSignal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sig, ok := b.open[id]
	if !ok {
		return nil, ErrSignalNotFound
	}
	cp := *sig
	return &cp, nil
}
