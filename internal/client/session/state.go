package session

import "github.com/dmitrijs2005/groupgo/internal/client/api"

type State int

const (
	Unauthenticated State = iota
	Loading
	Authenticated
	Error
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the session. The manager hands out
// snapshots; nothing outside the manager can mutate the live session.
type Snapshot struct {
	State State
	// User is nil unless State is Authenticated.
	User *api.UserProfile
	// Err is the last classified failure, kept for display.
	Err error
}

// clone detaches the snapshot from the manager's live profile.
func (s Snapshot) clone() Snapshot {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func (s Snapshot) Authenticated() bool {
	return s.State == Authenticated && s.User != nil
}
