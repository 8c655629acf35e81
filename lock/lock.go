// Package lock provides a cooperative guard against mutation of shared values.
//
// A Lockable is embedded in a value type; every mutator of that type calls
// Check with the name of the attempted operation before writing. Locking is
// not a concurrency primitive, it keeps canonical constants such as basis
// vectors from being modified through one of the many places they are
// referenced.
package lock

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

var (
	// ErrLocked is matched by every *LockedError.
	ErrLocked = errors.New("target locked")

	// ErrAlreadyLocked is the panic value of Lock on a locked value.
	ErrAlreadyLocked = errors.New("lock: already locked")

	// ErrUnlock is matched by all errors returned from Unlock.
	ErrUnlock = errors.New("lock: unlock not permitted")

	ErrNotLocked    = errors.WithMessage(ErrUnlock, "not locked")
	ErrUnlockDenied = errors.WithMessage(ErrUnlock, "wrong token")
)

// LockedError reports an attempted mutation of a locked value.
type LockedError struct {
	// Op names the attempted mutation, e.g. "set x" or "add".
	Op string
}

func (e *LockedError) Error() string { return ErrLocked.Error() + ": " + e.Op }

func (e *LockedError) Unwrap() error { return ErrLocked }

// Token is the capability returned by Lock and required by Unlock.
type Token uint64

// tokens is never zero after the first Lock; zero marks an unlocked value.
var tokens uint64

// Lockable holds lock state; zero value is unlocked.
type Lockable struct {
	token Token
}

// IsLocked reports whether mutation is currently denied.
func (l *Lockable) IsLocked() bool { return l.token != 0 }

// Lock denies further mutation and returns the token needed to Unlock.
// Panics with ErrAlreadyLocked if already locked.
func (l *Lockable) Lock() Token {
	if l.IsLocked() {
		panic(ErrAlreadyLocked)
	}
	l.token = Token(atomic.AddUint64(&tokens, 1))
	return l.token
}

// Unlock permits mutation again if t is the token returned by Lock.
func (l *Lockable) Unlock(t Token) error {
	if !l.IsLocked() {
		return ErrNotLocked
	}
	if t != l.token {
		return ErrUnlockDenied
	}
	l.token = 0
	return nil
}

// Check panics with a *LockedError naming op if locked.
func (l *Lockable) Check(op string) {
	if l.IsLocked() {
		panic(&LockedError{Op: op})
	}
}

// Locker is implemented by every type embedding Lockable.
type Locker interface {
	IsLocked() bool
	Lock() Token
	Unlock(Token) error
}

// Lock locks v and returns it, discarding the token; v stays locked for good.
func Lock[T interface{ Lock() Token }](v T) T {
	v.Lock()
	return v
}
