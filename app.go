package chipin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/chipinhq/chipin-go/pkg/apiclient"
	"github.com/chipinhq/chipin-go/pkg/fetchcache"
	"github.com/chipinhq/chipin-go/pkg/tokenstore"
	"github.com/chipinhq/chipin-go/svc/session"
	"github.com/chipinhq/chipin-go/svc/uistate"
)

// Config is the client configuration, loaded from the environment via
// pkg/config.
type Config struct {
	BaseURL        string        `env:"CHIPIN_BASE_URL" envDefault:"http://localhost:8000"`
	RequestTimeout time.Duration `env:"CHIPIN_REQUEST_TIMEOUT" envDefault:"15s"`
	CacheTTL       time.Duration `env:"CHIPIN_CACHE_TTL" envDefault:"1m"`
	TokenFile      string        `env:"CHIPIN_TOKEN_FILE"`
	LogLevel       string        `env:"CHIPIN_LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"CHIPIN_LOG_FORMAT" envDefault:"text"`
}

const keyCurrentUser = "auth/me"

// App is the composition root. Every store, cache, and service is
// constructed here exactly once and injected; nothing in the SDK relies on
// package-level mutable state.
type App struct {
	API              *apiclient.Client
	Session          *session.Manager
	AuthModal        *uistate.AuthModal
	CreateGroupModal *uistate.Modal
	JoinGroupModal   *uistate.Modal

	cache  *fetchcache.Cache[string, any]
	logger *slog.Logger
}

// Option configures an App during construction.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	httpClient *http.Client
	tokens     tokenstore.Store
	navigate   session.Navigate
}

// WithLogger sets the logger shared by all services. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithHTTPClient sets the http.Client used by the API client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithTokenStore overrides the token persistence location.
func WithTokenStore(store tokenstore.Store) Option {
	return func(o *options) {
		o.tokens = store
	}
}

// WithNavigate sets the navigation collaborator the session manager calls
// on logout.
func WithNavigate(navigate session.Navigate) Option {
	return func(o *options) {
		o.navigate = navigate
	}
}

// New wires an App from configuration: token store, fetch cache, API
// client, session manager, and modal controllers.
func New(cfg Config, opts ...Option) (*App, error) {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	tokens := o.tokens
	if tokens == nil {
		tokens = defaultTokenStore(cfg, o.logger)
	}

	app := &App{
		AuthModal:        uistate.NewAuthModal(),
		CreateGroupModal: uistate.NewModal(),
		JoinGroupModal:   uistate.NewModal(),
		cache:            fetchcache.New[string, any](cfg.CacheTTL),
		logger:           o.logger,
	}

	clientOpts := []apiclient.Option{
		apiclient.WithLogger(o.logger),
		// The token source reads the session manager's in-memory token, so
		// a credential that failed to persist still authenticates requests
		// for the current process life.
		apiclient.WithTokenSource(func() (string, bool) {
			if app.Session == nil {
				return "", false
			}
			return app.Session.Token()
		}),
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, apiclient.WithHTTPClient(o.httpClient))
	} else if cfg.RequestTimeout > 0 {
		clientOpts = append(clientOpts, apiclient.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}))
	}

	api, err := apiclient.New(cfg.BaseURL, clientOpts...)
	if err != nil {
		return nil, err
	}
	app.API = api

	app.Session = session.New(tokens, app,
		session.WithLogger(o.logger),
		session.WithNavigate(o.navigate))
	// Start only after the Session field is assigned: the client's token
	// source reads it, and the startup fetch must authenticate.
	app.Session.Start()

	return app, nil
}

func defaultTokenStore(cfg Config, logger *slog.Logger) tokenstore.Store {
	path := cfg.TokenFile
	if path == "" {
		defaultPath, ok := tokenstore.DefaultPath("chipin")
		if !ok {
			logger.Warn("no user config directory; session token will not persist")
			return tokenstore.NewMemory()
		}
		path = defaultPath
	}
	return tokenstore.NewFile(path)
}

// CurrentUser returns the authenticated profile through the cache.
// Implements session.ProfileSource.
func (a *App) CurrentUser(ctx context.Context) (*apiclient.User, error) {
	value, err := a.cache.GetOrFetch(ctx, keyCurrentUser, func(ctx context.Context) (any, error) {
		return a.API.Me(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.(*apiclient.User), nil
}

// InvalidateCurrentUser drops the cached profile. Implements
// session.ProfileSource.
func (a *App) InvalidateCurrentUser() {
	a.cache.Invalidate(keyCurrentUser)
}

// ClearAll drops every cached server entry. Implements
// session.ProfileSource.
func (a *App) ClearAll() {
	a.cache.Clear()
}

// Groups returns a page of the user's groups through the cache.
func (a *App) Groups(ctx context.Context, offset, limit int) (*apiclient.Paginated[apiclient.GroupListItem], error) {
	key := fmt.Sprintf("groups?offset=%d&limit=%d", offset, limit)
	value, err := a.cache.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return a.API.ListGroups(ctx, offset, limit)
	})
	if err != nil {
		return nil, err
	}
	return value.(*apiclient.Paginated[apiclient.GroupListItem]), nil
}

// Group returns one group's details through the cache.
func (a *App) Group(ctx context.Context, groupID int) (*apiclient.GroupDetail, error) {
	key := fmt.Sprintf("groups/%d", groupID)
	value, err := a.cache.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return a.API.GetGroup(ctx, groupID)
	})
	if err != nil {
		return nil, err
	}
	return value.(*apiclient.GroupDetail), nil
}

// InvalidateGroup drops one group's cached detail, e.g. after recording an
// expense or settlement in it.
func (a *App) InvalidateGroup(groupID int) {
	a.cache.Invalidate(fmt.Sprintf("groups/%d", groupID))
}

// InvalidateGroupLists drops every cached group-list page, e.g. after
// creating a group or joining one.
func (a *App) InvalidateGroupLists() {
	a.cache.InvalidateMatching(func(key string) bool {
		return strings.HasPrefix(key, "groups?")
	})
}
