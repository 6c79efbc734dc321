package session_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipinhq/chipin-go/pkg/apiclient"
	"github.com/chipinhq/chipin-go/pkg/tokenstore"
	"github.com/chipinhq/chipin-go/svc/session"
)

// fakeProfile is a controllable ProfileSource.
type fakeProfile struct {
	mu            sync.Mutex
	fetch         func(ctx context.Context) (*apiclient.User, error)
	invalidations atomic.Int32
	clears        atomic.Int32
}

func (f *fakeProfile) CurrentUser(ctx context.Context) (*apiclient.User, error) {
	f.mu.Lock()
	fetch := f.fetch
	f.mu.Unlock()
	return fetch(ctx)
}

func (f *fakeProfile) InvalidateCurrentUser() { f.invalidations.Add(1) }
func (f *fakeProfile) ClearAll()              { f.clears.Add(1) }

func (f *fakeProfile) setFetch(fetch func(ctx context.Context) (*apiclient.User, error)) {
	f.mu.Lock()
	f.fetch = fetch
	f.mu.Unlock()
}

func returnUser(user *apiclient.User) func(context.Context) (*apiclient.User, error) {
	return func(context.Context) (*apiclient.User, error) { return user, nil }
}

func returnErr(err error) func(context.Context) (*apiclient.User, error) {
	return func(context.Context) (*apiclient.User, error) { return nil, err }
}

// failingStore rejects every persistence operation.
type failingStore struct{}

func (failingStore) Get() (string, bool) { return "", false }
func (failingStore) Set(string) bool     { return false }
func (failingStore) Remove() bool        { return false }

var ada = &apiclient.User{ID: 1, Name: "Ada", Email: "ada@example.com"}

func waitStatus(t *testing.T, m *session.Manager, want session.Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		return m.Status() == want
	}, time.Second, 5*time.Millisecond, "want status %s, have %s", want, m.Status())
}

func TestManager_Anonymous(t *testing.T) {
	t.Parallel()

	profile := &fakeProfile{fetch: returnUser(ada)}
	m := session.New(tokenstore.NewMemory(), profile)
	m.Start()

	assert.Equal(t, session.StatusAnonymous, m.Status())

	state := m.Snapshot()
	assert.False(t, state.IsAuthenticated())
	assert.False(t, state.Loading)
	assert.Nil(t, state.User)

	_, ok := m.Token()
	assert.False(t, ok)
}

func TestManager_RestoresPersistedToken(t *testing.T) {
	t.Parallel()

	tokens := tokenstore.NewMemory()
	tokens.Set("tok-persisted")

	profile := &fakeProfile{fetch: returnUser(ada)}
	m := session.New(tokens, profile)

	// No I/O before Start: the persisted token is not even read yet.
	assert.Equal(t, session.StatusAnonymous, m.Status())

	m.Start()
	waitStatus(t, m, session.StatusAuthenticated)

	token, ok := m.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-persisted", token)
	assert.True(t, m.Snapshot().IsAuthenticated())
	assert.Equal(t, ada, m.Snapshot().User)
}

func TestManager_Login(t *testing.T) {
	t.Parallel()

	t.Run("successful login authenticates", func(t *testing.T) {
		tokens := tokenstore.NewMemory()
		profile := &fakeProfile{fetch: returnUser(ada)}
		m := session.New(tokens, profile)

		m.Login(context.Background(), "tok-1")
		waitStatus(t, m, session.StatusAuthenticated)

		persisted, ok := tokens.Get()
		assert.True(t, ok)
		assert.Equal(t, "tok-1", persisted)
		assert.Equal(t, int32(1), profile.invalidations.Load())
	})

	t.Run("failed persistence degrades to in-memory credential", func(t *testing.T) {
		profile := &fakeProfile{fetch: returnUser(ada)}
		m := session.New(failingStore{}, profile)

		// Login must not fail even though the write is rejected.
		m.Login(context.Background(), "tok-ephemeral")
		waitStatus(t, m, session.StatusAuthenticated)

		token, ok := m.Token()
		assert.True(t, ok)
		assert.Equal(t, "tok-ephemeral", token)
	})

	t.Run("failed fetch leaves token and surfaces error", func(t *testing.T) {
		tokens := tokenstore.NewMemory()
		boom := errors.New("getMe: 401")
		profile := &fakeProfile{fetch: returnErr(boom)}
		m := session.New(tokens, profile)

		m.Login(context.Background(), "tok-stale")
		waitStatus(t, m, session.StatusInvalidSession)

		state := m.Snapshot()
		assert.False(t, state.IsAuthenticated())
		assert.ErrorIs(t, state.Err, boom)

		// The token is not auto-cleared on a failed fetch.
		token, ok := m.Token()
		assert.True(t, ok)
		assert.Equal(t, "tok-stale", token)
		persisted, ok := tokens.Get()
		assert.True(t, ok)
		assert.Equal(t, "tok-stale", persisted)
	})

	t.Run("loading only while fetch in flight", func(t *testing.T) {
		release := make(chan struct{})
		profile := &fakeProfile{fetch: func(context.Context) (*apiclient.User, error) {
			<-release
			return ada, nil
		}}
		m := session.New(tokenstore.NewMemory(), profile)

		m.Login(context.Background(), "tok-1")
		assert.Equal(t, session.StatusPending, m.Status())
		assert.True(t, m.Snapshot().Loading)
		assert.False(t, m.Snapshot().IsAuthenticated())

		close(release)
		waitStatus(t, m, session.StatusAuthenticated)
		assert.False(t, m.Snapshot().Loading)
	})

	t.Run("superseding login discards stale fetch", func(t *testing.T) {
		bob := &apiclient.User{ID: 2, Name: "Bob", Email: "bob@example.com"}

		releaseFirst := make(chan struct{})
		profile := &fakeProfile{fetch: func(context.Context) (*apiclient.User, error) {
			<-releaseFirst
			return ada, nil
		}}
		m := session.New(tokenstore.NewMemory(), profile)

		m.Login(context.Background(), "tok-ada")

		profile.setFetch(returnUser(bob))
		m.Login(context.Background(), "tok-bob")
		waitStatus(t, m, session.StatusAuthenticated)

		// The first fetch resolving late must not overwrite the newer
		// session.
		close(releaseFirst)
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, bob, m.Snapshot().User)
	})

	t.Run("fetch racing a superseding login cannot win", func(t *testing.T) {
		bob := &apiclient.User{ID: 2, Name: "Bob", Email: "bob@example.com"}

		profile := &fakeProfile{}
		m := session.New(tokenstore.NewMemory(), profile)

		// The stale fetch's publish races the whole second login, including
		// its generation bump and its own fetch, on every iteration.
		for range 25 {
			release := make(chan struct{})
			profile.setFetch(func(context.Context) (*apiclient.User, error) {
				<-release
				return ada, nil
			})
			m.Login(context.Background(), "tok-ada")

			profile.setFetch(returnUser(bob))
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				close(release)
			}()
			go func() {
				defer wg.Done()
				m.Login(context.Background(), "tok-bob")
			}()
			wg.Wait()

			require.Eventually(t, func() bool {
				state := m.Snapshot()
				return state.User == bob && !state.Loading
			}, time.Second, time.Millisecond)

			// And no late publish flips it back afterwards.
			time.Sleep(5 * time.Millisecond)
			assert.Same(t, bob, m.Snapshot().User)
		}
	})
}

func TestManager_Logout(t *testing.T) {
	t.Parallel()

	t.Run("clears token, cache, and navigates home", func(t *testing.T) {
		tokens := tokenstore.NewMemory()
		profile := &fakeProfile{fetch: returnUser(ada)}

		var navigatedTo string
		m := session.New(tokens, profile,
			session.WithNavigate(func(path string) { navigatedTo = path }))

		m.Login(context.Background(), "tok-1")
		waitStatus(t, m, session.StatusAuthenticated)

		m.Logout(context.Background())

		assert.Equal(t, session.StatusAnonymous, m.Status())
		assert.Equal(t, "/", navigatedTo)
		assert.Equal(t, int32(1), profile.clears.Load())

		_, ok := m.Token()
		assert.False(t, ok)
		_, ok = tokens.Get()
		assert.False(t, ok)

		state := m.Snapshot()
		assert.Nil(t, state.User)
		assert.Nil(t, state.Err)
		assert.False(t, state.IsAuthenticated())
	})

	t.Run("logout after failed fetch clears the invalid session", func(t *testing.T) {
		profile := &fakeProfile{fetch: returnErr(errors.New("boom"))}
		m := session.New(tokenstore.NewMemory(), profile)

		m.Login(context.Background(), "tok-bad")
		waitStatus(t, m, session.StatusInvalidSession)

		m.Logout(context.Background())
		assert.Equal(t, session.StatusAnonymous, m.Status())
		assert.Nil(t, m.Snapshot().Err)
	})

	t.Run("failed token removal still resets", func(t *testing.T) {
		profile := &fakeProfile{fetch: returnUser(ada)}
		m := session.New(failingStore{}, profile)

		m.Login(context.Background(), "tok-1")
		waitStatus(t, m, session.StatusAuthenticated)

		m.Logout(context.Background())
		assert.Equal(t, session.StatusAnonymous, m.Status())
	})
}

func TestManager_Subscribe(t *testing.T) {
	t.Parallel()

	profile := &fakeProfile{fetch: returnUser(ada)}
	m := session.New(tokenstore.NewMemory(), profile)

	var mu sync.Mutex
	notifications := 0
	unsubscribe := m.Subscribe(func() {
		mu.Lock()
		notifications++
		mu.Unlock()
	})

	m.Login(context.Background(), "tok-1")
	waitStatus(t, m, session.StatusAuthenticated)

	mu.Lock()
	// Login sets the pending state, the fetch completion sets the
	// authenticated one.
	assert.GreaterOrEqual(t, notifications, 2)
	seen := notifications
	mu.Unlock()

	unsubscribe()
	m.Logout(context.Background())

	mu.Lock()
	assert.Equal(t, seen, notifications)
	mu.Unlock()
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "anonymous", session.StatusAnonymous.String())
	assert.Equal(t, "pending", session.StatusPending.String())
	assert.Equal(t, "authenticated", session.StatusAuthenticated.String())
	assert.Equal(t, "invalid-session", session.StatusInvalidSession.String())
}
