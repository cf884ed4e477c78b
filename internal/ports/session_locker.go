package ports

import "context"

// Port: a lock that keeps generate actions for one session from overlapping
// across server instances.
type SessionLocker interface {
	// Acquire takes the session's lock. ok is false when another holder has it.
	// release must be called once when ok is true.
	Acquire(ctx context.Context, sessionID string) (release func(context.Context) error, ok bool, err error)
}
