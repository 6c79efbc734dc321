package uistate

import "github.com/chipinhq/chipin-go/pkg/observable"

// Tab selects which panel the auth modal opens on.
type Tab string

const (
	TabLogin    Tab = "login"
	TabRegister Tab = "register"
)

// AuthModalState is the auth modal's shared state. All fields besides Open
// are zero whenever the modal is closed: Close writes the whole zero value
// rather than flipping a flag, so a previous open's parameters can never
// leak into the next open.
type AuthModalState struct {
	Open       bool
	InitialTab Tab
	RedirectTo string
}

// AuthModalParams are the optional open-time parameters.
type AuthModalParams struct {
	InitialTab Tab
	RedirectTo string
}

// AuthModal coordinates the authentication modal across every surface that
// renders or triggers it. All instances handed the same AuthModal observe
// identical state; there is no per-surface copy.
type AuthModal struct {
	store *observable.Store[AuthModalState]
}

// NewAuthModal creates a closed auth modal.
func NewAuthModal() *AuthModal {
	return &AuthModal{store: observable.New(AuthModalState{})}
}

// Open opens the modal with the given parameters, overwriting any previous
// state wholesale.
func (m *AuthModal) Open(params AuthModalParams) {
	m.store.Set(AuthModalState{
		Open:       true,
		InitialTab: params.InitialTab,
		RedirectTo: params.RedirectTo,
	})
}

// Close closes the modal and clears all open-time parameters.
func (m *AuthModal) Close() {
	m.store.Set(AuthModalState{})
}

// State returns the current modal state.
func (m *AuthModal) State() AuthModalState {
	return m.store.Get()
}

// Subscribe registers a listener notified on every state change.
func (m *AuthModal) Subscribe(listener func()) func() {
	return m.store.Subscribe(listener)
}

// ModalState is the state of a parameterless modal.
type ModalState struct {
	Open bool
}

// Modal is a plain open/closed modal with no open-time parameters, used
// for the create-group and join-group dialogs.
type Modal struct {
	store *observable.Store[ModalState]
}

// NewModal creates a closed modal.
func NewModal() *Modal {
	return &Modal{store: observable.New(ModalState{})}
}

func (m *Modal) Open() {
	m.store.Set(ModalState{Open: true})
}

func (m *Modal) Close() {
	m.store.Set(ModalState{})
}

func (m *Modal) IsOpen() bool {
	return m.store.Get().Open
}

// Subscribe registers a listener notified on every state change.
func (m *Modal) Subscribe(listener func()) func() {
	return m.store.Subscribe(listener)
}
