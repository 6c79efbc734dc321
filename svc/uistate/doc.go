// Package uistate holds the shared modal state for the client's UI
// surfaces: the auth modal and the create-group and join-group dialogs.
//
// Each modal wraps one observable store. Open overwrites the stored state
// wholesale and Close writes the zero value, which is what guarantees the
// no-stale-parameters invariant: a redirect target passed to one open can
// never bleed into a later open.
//
// Modal instances are constructed once at the application composition root
// and shared; every surface reading the same instance observes identical
// state the moment a mutation completes.
package uistate
