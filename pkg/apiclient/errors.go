package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidBaseURL indicates the client was constructed with an unusable base URL
	ErrInvalidBaseURL = errors.New("apiclient.invalid_base_url")
)

// APIError is a non-2xx response from the backend. The raw body is kept so
// pkg/apierror can classify the payload; the client itself makes no attempt
// to interpret it.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	RequestID  string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// ResponseBody returns the raw response body. Implements
// apierror.ResponseBodyer.
func (e *APIError) ResponseBody() []byte {
	return e.Body
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
