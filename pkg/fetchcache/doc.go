// Package fetchcache provides a generic, thread-safe TTL cache for server
// data fetched over the API.
//
// It is the client's single holding area for server-owned state: the
// current user profile, group lists, group details. Keeping everything in
// one cache keeps the logout contract simple: Clear wipes every entry at
// once, so no data keyed by the previous identity survives a user switch.
//
// # Key Features
//
//   - Generic over key and value types
//   - Per-entry TTL with lazy expiry
//   - Single-flight fetching: concurrent GetOrFetch calls for one key
//     share a single request
//   - Generation-tracked invalidation: a fetch in flight when Invalidate
//     or Clear runs does not repopulate the cache when it resolves
//
// # Usage
//
//	cache := fetchcache.New[string, *apiclient.User](5 * time.Minute)
//
//	user, err := cache.GetOrFetch(ctx, "auth/me", func(ctx context.Context) (*apiclient.User, error) {
//		return client.Me(ctx)
//	})
//
//	cache.Invalidate("auth/me") // next read re-fetches
//	cache.Clear()               // identity changed: drop everything
package fetchcache
