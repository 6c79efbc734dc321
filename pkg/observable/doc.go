// Package observable provides a generic single-value store with
// subscribe/notify semantics. It is the base synchronization primitive the
// SDK's stateful services build on: each logical piece of shared UI or
// session state lives in exactly one Store instance, and every consumer
// reads the same mutable cell.
//
// # Semantics
//
//   - Set fully completes notification before returning; there is no
//     batching and no async dispatch.
//   - Every listener registered at the time of a Set call is invoked
//     exactly once per call, including calls that set an equal value.
//   - Listener invocation order is unspecified.
//   - Listeners run outside the store's internal lock, so re-entrant Set
//     and Subscribe calls from inside a listener are safe. The store does
//     not detect notify loops.
//
// # Usage
//
//	store := observable.New(0)
//
//	unsubscribe := store.Subscribe(func() {
//		fmt.Println("current:", store.Get())
//	})
//	defer unsubscribe()
//
//	store.Set(42) // prints "current: 42" before Set returns
//
// Stores are intended to be constructed once at the application composition
// root and passed to the components that share them, rather than held in
// package-level variables.
package observable
