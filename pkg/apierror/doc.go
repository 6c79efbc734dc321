// Package apierror normalizes the backend's heterogeneous error payloads
// into a small tagged union that form surfaces can render exhaustively.
//
// The backend produces two known error shapes:
//
//   - Field-validation errors: {"detail": [{"type": ..., "loc": [...],
//     "msg": ...}, ...]}, one entry per invalid request field, with a
//     machine-readable location path.
//   - General errors: {"detail": "human readable message"}.
//
// Everything else (malformed bodies, bare transport failures) is
// unrecognized, and callers fall back to their own generic message.
//
// Classification happens once at the boundary via Classify, which parses
// the raw body into a Classification value; the rest of the code switches
// on Classification.Kind instead of repeating ad hoc shape checks.
//
// Detection inspects only the first entry of the detail list: a payload
// whose first entry is well-formed but whose later entries are not still
// classifies as a validation error.
//
// State is the per-form stateful companion: it holds the most recent raw
// error and memoizes the derived field/general views until the error is
// replaced or cleared. It never panics and never returns errors of its
// own; malformed payloads simply degrade to the unrecognized shape.
//
//	state := apierror.NewState()
//
//	if err := client.CreateGroup(ctx, in); err != nil {
//		state.Set(err)
//		if msg, ok := state.FieldError("name"); ok {
//			// render beside the input
//		}
//	}
package apierror
