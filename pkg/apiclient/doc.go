// Package apiclient is the HTTP client for the expense-splitting API:
// authentication, groups, join requests, settlements, and expenses.
//
// The client is a thin transport layer. It encodes requests, attaches the
// bearer token from its TokenSource, decodes success payloads, and wraps
// every non-2xx response in *APIError with the raw body intact. It never
// interprets error payloads itself; that is pkg/apierror's job, applied by
// callers:
//
//	group, err := client.CreateGroup(ctx, apiclient.GroupCreate{Name: name})
//	if err != nil {
//		errState.Set(err) // classified into field or general errors
//	}
//
// Each request carries a generated X-Request-ID header, which is retained
// on APIError for correlating client logs with server logs.
//
// The only non-JSON endpoint is IssueToken: the backend implements the
// OAuth2 password grant and expects form-encoded credentials.
package apiclient
