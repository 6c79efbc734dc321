package session

import "github.com/chipinhq/chipin-go/pkg/apiclient"

// Status is the session state machine position.
type Status int

const (
	// StatusAnonymous means no token is held.
	StatusAnonymous Status = iota
	// StatusPending means a token is held and the profile fetch is in
	// flight.
	StatusPending
	// StatusAuthenticated means the profile fetch succeeded.
	StatusAuthenticated
	// StatusInvalidSession means a token is held but the profile fetch
	// failed. The token stays until an explicit Logout or a fresh Login;
	// there is no automatic retry.
	StatusInvalidSession
)

func (s Status) String() string {
	switch s {
	case StatusAnonymous:
		return "anonymous"
	case StatusPending:
		return "pending"
	case StatusAuthenticated:
		return "authenticated"
	case StatusInvalidSession:
		return "invalid-session"
	default:
		return "unknown"
	}
}

// State is the derived session view UI surfaces consume. User is fetched,
// not owned. Err surfaces the last profile-fetch failure without
// distinguishing network from authorization failures; callers apply
// pkg/apierror if they need that distinction.
type State struct {
	User    *apiclient.User
	Loading bool
	Err     error
}

// IsAuthenticated is a pure derivation: user present and no error. It is
// never stored independently, so token presence and server-confirmed
// identity cannot drift apart. A held token alone does not authenticate.
func (s State) IsAuthenticated() bool {
	return s.User != nil && s.Err == nil
}
