package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/chipinhq/chipin-go/pkg/apiclient"
	"github.com/chipinhq/chipin-go/pkg/observable"
	"github.com/chipinhq/chipin-go/pkg/tokenstore"
)

// ProfileSource provides the cache-backed view of the current user. The
// manager drives its invalidation: the current-user entry on login, the
// whole cache on logout.
type ProfileSource interface {
	// CurrentUser returns the authenticated profile, fetching through the
	// cache.
	CurrentUser(ctx context.Context) (*apiclient.User, error)

	// InvalidateCurrentUser drops the cached profile so the next read
	// re-fetches.
	InvalidateCurrentUser()

	// ClearAll drops every cached server entry, not just the profile.
	// Residual data keyed by the old identity must not survive a user
	// switch.
	ClearAll()
}

// Navigate performs a full navigation to the given route. On logout the
// manager always navigates to "/" as a hard reset rather than an
// incremental UI teardown.
type Navigate func(path string)

// Manager owns the credential token lifetime and derives the session view.
type Manager struct {
	mu         sync.Mutex
	token      string
	hasToken   bool
	generation uint64

	tokens   tokenstore.Store
	profile  ProfileSource
	navigate Navigate
	store    *observable.Store[State]
	logger   *slog.Logger
}

// New creates a manager. The persisted token is not read until Start, so
// collaborators the profile fetch depends on can finish wiring first.
func New(tokens tokenstore.Store, profile ProfileSource, opts ...Option) *Manager {
	m := &Manager{
		tokens:   tokens,
		profile:  profile,
		navigate: func(string) {},
		store:    observable.New(State{}),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start reads any persisted token and, when one is present, begins the
// background profile fetch. Until the fetch resolves the session is
// pending, never authenticated. Call Start once, after every collaborator
// the fetch path touches is wired; before Start the session reports
// anonymous.
func (m *Manager) Start() {
	token, ok := m.tokens.Get()
	if !ok {
		return
	}

	m.mu.Lock()
	m.token = token
	m.hasToken = true
	generation := m.generation
	m.mu.Unlock()

	m.store.Set(State{Loading: true})
	go m.refresh(context.Background(), generation)
}

// Login persists the token and starts a background profile fetch. A failed
// persistence write is logged and tolerated: the credential degrades to
// in-memory-only for the current process life. The cached profile entry is
// invalidated so the fetch hits the server.
func (m *Manager) Login(ctx context.Context, token string) {
	if ok := m.tokens.Set(token); !ok {
		m.logger.Warn("persisting session token failed; credential is in-memory only")
	}

	m.mu.Lock()
	m.token = token
	m.hasToken = true
	m.generation++
	generation := m.generation
	m.mu.Unlock()

	m.profile.InvalidateCurrentUser()
	m.store.Set(State{Loading: true})

	go m.refresh(context.WithoutCancel(ctx), generation)
}

// Logout removes the persisted token, clears the in-memory credential,
// clears all cached server data, and navigates to the anonymous landing
// route. Removal failures are logged and do not block the reset.
func (m *Manager) Logout(ctx context.Context) {
	if ok := m.tokens.Remove(); !ok {
		m.logger.Warn("removing persisted session token failed")
	}

	m.mu.Lock()
	m.token = ""
	m.hasToken = false
	m.generation++
	m.mu.Unlock()

	m.profile.ClearAll()
	m.store.Set(State{})
	m.navigate("/")
}

// Token returns the in-memory credential. Holding a token does not imply
// the session is authenticated.
func (m *Manager) Token() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.hasToken
}

// Snapshot returns the current derived session view.
func (m *Manager) Snapshot() State {
	return m.store.Get()
}

// Status reports the session state machine position.
func (m *Manager) Status() Status {
	m.mu.Lock()
	hasToken := m.hasToken
	m.mu.Unlock()

	if !hasToken {
		return StatusAnonymous
	}
	state := m.store.Get()
	switch {
	case state.Loading:
		return StatusPending
	case state.Err != nil:
		return StatusInvalidSession
	case state.User != nil:
		return StatusAuthenticated
	default:
		return StatusPending
	}
}

// Subscribe registers a listener notified on every session state change.
func (m *Manager) Subscribe(listener func()) func() {
	return m.store.Subscribe(listener)
}

// refresh resolves the profile fetch for one credential generation. A
// fetch superseded by a newer Login or Logout is discarded; the fetch
// failure of a live credential surfaces as Err and leaves the token in
// place, so a transient network error never logs the user out.
func (m *Manager) refresh(ctx context.Context, generation uint64) {
	user, err := m.profile.CurrentUser(ctx)

	next := State{User: user}
	if err != nil {
		m.logger.Debug("profile fetch failed", slog.Any("error", err))
		next = State{Err: err}
	}

	// The generation check and the publish must be one atomic step: checked
	// separately, a Login landing between them could complete its own fetch
	// first and then be overwritten by this stale result.
	m.store.Update(func(current State) State {
		m.mu.Lock()
		stale := generation != m.generation
		m.mu.Unlock()
		if stale {
			return current
		}
		return next
	})
}
