// Package session manages the client's credential token and the derived
// authenticated/unauthenticated view.
//
// The manager owns exactly one piece of durable state, the token, and
// treats everything else as derived. The user profile is fetched through a
// cache-backed ProfileSource; IsAuthenticated is computed from the fetch
// result, never stored, so token presence and server-confirmed identity
// cannot drift apart.
//
// # State machine
//
//	anonymous       no token held
//	pending         token held, profile fetch in flight
//	authenticated   fetch succeeded
//	invalid-session token held, fetch failed; no automatic retry
//
// New performs no I/O; Start reads the persisted token and, when one is
// present, moves to pending and begins the profile fetch, so construction
// can finish wiring collaborators before any request goes out. Login moves
// to pending and starts a background fetch; its success or failure moves
// to authenticated or invalid-session. Logout moves any
// state to anonymous, clears the entire server-data cache, and performs a
// full navigation to "/" as a hard reset, so no remnant of the previous
// identity survives.
//
// # Failure semantics
//
// Token persistence failures are logged and tolerated; the credential
// degrades to in-memory-only for the current process life. A failed
// profile fetch surfaces as State.Err and leaves the token in place;
// only an explicit Logout or a fresh Login clears it, so a transient
// network error never logs the user out.
//
// Concurrent Login/Logout calls are last-write-wins: a superseded fetch is
// discarded via a generation counter rather than cancelled.
package session
