package apierror

import (
	"log/slog"
	"sync"
)

// State holds the current raw API error for one form surface and derives
// field-level and general views from it. Exactly one raw error is held at a
// time; Set replaces it wholesale and Clear resets to empty. Derivations
// are computed lazily on first read and memoized until the raw error
// changes.
type State struct {
	mu     sync.Mutex
	raw    error
	memo   *derived
	logger *slog.Logger
}

type derived struct {
	classification Classification
	fieldErrors    map[string]string
}

// StateOption configures a State during construction.
type StateOption func(*State)

// WithLogger sets the logger used to report discarded unmappable validation
// items. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) StateOption {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewState creates an empty error state.
func NewState(opts ...StateOption) *State {
	s := &State{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set stores err as the current raw error, replacing any previous one.
// Derived views recompute on next read. Setting nil is equivalent to Clear.
func (s *State) Set(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = err
	s.memo = nil
}

// Clear resets the state to empty. Idempotent.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = nil
	s.memo = nil
}

// Err returns the currently stored raw error, or nil when empty.
func (s *State) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// IsValidationError reports whether the stored error classified as a
// field-validation error. Mutually exclusive with IsGeneralError; both are
// false for unrecognized errors and when empty.
func (s *State) IsValidationError() bool {
	return s.derive().classification.Kind == KindValidation
}

// IsGeneralError reports whether the stored error classified as a general
// business error.
func (s *State) IsGeneralError() bool {
	return s.derive().classification.Kind == KindGeneral
}

// GeneralError returns the general error message, or "" when the stored
// error is not a general error.
func (s *State) GeneralError() string {
	return s.derive().classification.Detail
}

// FieldErrors returns the fieldPath -> message map derived from the stored
// error. Empty for general, unrecognized, and absent errors. The returned
// map must not be mutated by callers.
func (s *State) FieldErrors() map[string]string {
	return s.derive().fieldErrors
}

// FieldError returns the message for the named field, if any.
func (s *State) FieldError(name string) (string, bool) {
	msg, ok := s.derive().fieldErrors[name]
	return msg, ok
}

// HasFieldError reports whether the named field has an error message.
func (s *State) HasFieldError(name string) bool {
	_, ok := s.derive().fieldErrors[name]
	return ok
}

func (s *State) derive() *derived {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.memo != nil {
		return s.memo
	}

	d := &derived{fieldErrors: map[string]string{}}
	if s.raw != nil {
		d.classification = Classify(s.raw)
		if d.classification.Kind == KindValidation {
			d.fieldErrors = extractFieldErrors(d.classification.Items, s.logger)
		}
	}
	s.memo = d
	return d
}
