// Package chipin is a Go client SDK for the Chipin expense-splitting API:
// authentication, expense groups, invite-code joins, expenses, and
// settlements.
//
// The package is the application composition root. New constructs every
// store, cache, and service exactly once and wires them together with
// explicit injection:
//
//	var cfg chipin.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	app, err := chipin.New(cfg)
//	if err != nil {
//		return err
//	}
//
//	app.Session.Login(ctx, token.AccessToken)
//	groups, err := app.Groups(ctx, 0, 12)
//
// The layering, leaves first:
//
//   - pkg/observable: the single-value subscribe/notify store primitive.
//   - pkg/tokenstore: durable persistence for the credential token.
//   - pkg/fetchcache: the TTL cache holding all server data.
//   - pkg/apiclient: the HTTP transport; errors keep their raw bodies.
//   - pkg/apierror: classifies error bodies into field-level validation
//     errors, general errors, or unrecognized.
//   - svc/session: credential lifetime and the derived authenticated view.
//   - svc/uistate: shared modal state for UI surfaces.
//
// Server data is read through the App's cache (CurrentUser, Groups,
// Group); logout clears that cache wholesale so nothing keyed by the
// previous identity survives a user switch.
package chipin
