// Package store holds the process-memory collections behind the relay: the
// user registry and the distress signal board. Each collection has its own
// mutex and every operation holds it for the whole scan-then-mutate section,
// so checks are atomic with the writes they protect. There is no durable
// backing; state lives and dies with the process.
package store

import "errors"

var (
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionMismatch = errors.New("session mismatch")

	ErrSignalNotFound = errors.New("signal not found")
	ErrNoActiveSignal = errors.New("no active signal")
)

type Store struct {
	Users   *Users
	Signals *Signals
}

func New() *Store {
	return &Store{Users: NewUsers(), Signals: NewSignals()}
}
