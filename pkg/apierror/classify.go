package apierror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
)

// Kind identifies which of the backend's error shapes a payload matched.
type Kind int

const (
	// KindUnrecognized covers anything that is not one of the two known
	// shapes: malformed JSON, bare transport failures, unexpected payloads.
	KindUnrecognized Kind = iota
	// KindValidation is a field-validation error: detail carries a list of
	// invalid request fields with machine-readable location paths.
	KindValidation
	// KindGeneral is a business error: detail carries a single
	// human-readable message not tied to any field.
	KindGeneral
)

// ValidationItem is one entry of a field-validation error's detail list.
type ValidationItem struct {
	Type  string        `json:"type"`
	Loc   []PathSegment `json:"loc"`
	Msg   string        `json:"msg"`
	Input any           `json:"input,omitempty"`
}

// PathSegment is one element of a validation item's location path. The
// backend emits both string keys and numeric indices; both decode to their
// textual form so paths can be joined into field keys.
type PathSegment string

func (p *PathSegment) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = PathSegment(s)
		return nil
	}
	// Numeric index: keep the literal digits.
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PathSegment(n.String())
	return nil
}

// Classification is the result of parsing a raw API error once at the
// boundary. Exactly one shape applies: Items is populated only for
// KindValidation, Detail only for KindGeneral.
type Classification struct {
	Kind   Kind
	Items  []ValidationItem
	Detail string
}

// ResponseBodyer is implemented by transport errors that retain the raw
// response body, such as apiclient.APIError.
type ResponseBodyer interface {
	ResponseBody() []byte
}

// Classify inspects err and returns its classification. Errors that do not
// carry a response body, and bodies matching neither known shape, classify
// as KindUnrecognized. Classify never fails; malformed input degrades to
// KindUnrecognized.
func Classify(err error) Classification {
	var rb ResponseBodyer
	if err == nil || !errors.As(err, &rb) {
		return Classification{Kind: KindUnrecognized}
	}
	return ClassifyBody(rb.ResponseBody())
}

// ClassifyBody classifies a raw response body without requiring a wrapping
// error value.
func ClassifyBody(body []byte) Classification {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return Classification{Kind: KindUnrecognized}
	}

	// A string detail is the general-error shape. Mutually exclusive with
	// the validation shape by construction: there detail is a list.
	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		return Classification{Kind: KindGeneral, Detail: detail}
	}

	var rawItems []json.RawMessage
	if err := json.Unmarshal(envelope.Detail, &rawItems); err != nil || len(rawItems) == 0 {
		return Classification{Kind: KindUnrecognized}
	}
	// Only the first item is shape-checked. A list whose later items are
	// malformed still classifies as a validation error; this is a known
	// limitation of the detection heuristic.
	if !isWellFormedItem(rawItems[0]) {
		return Classification{Kind: KindUnrecognized}
	}

	items := make([]ValidationItem, 0, len(rawItems))
	for _, raw := range rawItems {
		var item ValidationItem
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return Classification{Kind: KindValidation, Items: items}
}

// isWellFormedItem verifies the first detail item carries a string type, a
// non-empty loc array, and a string msg.
func isWellFormedItem(raw json.RawMessage) bool {
	var probe struct {
		Type *string           `json:"type"`
		Loc  []json.RawMessage `json:"loc"`
		Msg  *string           `json:"msg"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe.Type != nil && probe.Msg != nil && len(probe.Loc) > 0
}

// IsFieldValidationError reports whether err carries the field-validation
// payload shape.
func IsFieldValidationError(err error) bool {
	return Classify(err).Kind == KindValidation
}

// IsGeneralError reports whether err carries the general-error payload
// shape.
func IsGeneralError(err error) bool {
	return Classify(err).Kind == KindGeneral
}

// ExtractFieldErrors maps validation items to a fieldPath -> message map.
// The first path segment is the request-part discriminator (for example
// "body") and is dropped; the remaining segments join with "." to form the
// field key. Items whose path empties out after the drop are unmappable to
// any field: they are logged and discarded, never surfaced. Messages for
// the same key concatenate with "; " in encounter order.
func ExtractFieldErrors(items []ValidationItem) map[string]string {
	return extractFieldErrors(items, slog.Default())
}

func extractFieldErrors(items []ValidationItem, logger *slog.Logger) map[string]string {
	fields := make(map[string]string)
	for _, item := range items {
		if len(item.Loc) < 2 {
			logger.Warn("discarding validation error with unmappable location",
				slog.Any("loc", item.Loc),
				slog.String("msg", item.Msg))
			continue
		}
		parts := make([]string, 0, len(item.Loc)-1)
		for _, seg := range item.Loc[1:] {
			parts = append(parts, string(seg))
		}
		key := strings.Join(parts, ".")
		if existing, ok := fields[key]; ok {
			fields[key] = existing + "; " + item.Msg
		} else {
			fields[key] = item.Msg
		}
	}
	return fields
}
