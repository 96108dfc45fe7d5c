package backend

import "errors"

// APIError is a failure reported by the backend itself: a non-2xx status or
// a response body with success=false. Message carries the body's message
// when the backend supplied one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unknown error"
}

// ErrorMessage extracts a human-readable message from a failed request:
// the response-body message first, then the transport error text, then a
// fixed fallback.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "unknown error"
}
