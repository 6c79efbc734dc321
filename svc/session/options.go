package session

import "log/slog"

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithNavigate sets the navigation collaborator invoked on logout.
// Defaults to a no-op.
func WithNavigate(navigate Navigate) Option {
	return func(m *Manager) {
		if navigate != nil {
			m.navigate = navigate
		}
	}
}

// WithLogger sets the logger for persistence and fetch diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}
