// Package tokenstore persists the session credential token outside process
// memory.
//
// The Store interface is error-free: Get, Set, and Remove report success
// with booleans. Persistence failures are non-fatal; the session manager
// logs them and continues with an in-memory-only credential for the
// current process life rather than failing the login.
//
// Two implementations ship with the package: File, which keeps the token
// in a 0600 file under the user config directory, and Memory, used in
// tests and as a fallback when no durable location is available.
package tokenstore
