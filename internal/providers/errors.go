package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when a decorated provider has no inner provider.
var ErrProviderUnavailable = errors.New("provider unavailable")

// Kind distinguishes why a fetch failed. Callers log the kinds differently
// but react identically: no data for that request.
type Kind int

const (
	// KindNetwork means no response was received at all.
	KindNetwork Kind = iota + 1
	// KindHTTP means the upstream answered with a non-2xx status.
	KindHTTP
	// KindDecode means the body was not the JSON we expected.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error captures a single failed upstream fetch.
type Error struct {
	Kind     Kind
	Resource string
	Status   int
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("%s: unexpected status %d", e.Resource, e.Status)
	case KindDecode:
		return fmt.Sprintf("%s: decode failed: %v", e.Resource, e.Err)
	default:
		return fmt.Sprintf("%s: request failed: %v", e.Resource, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError attempts to unwrap an error into a fetch Error.
func AsError(err error) (*Error, bool) {
	var fetchErr *Error
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// NetworkError builds a fetch Error for a transport-level failure.
func NetworkError(resource string, err error) *Error {
	return &Error{Kind: KindNetwork, Resource: resource, Err: err}
}

// HTTPError builds a fetch Error for a non-2xx response.
func HTTPError(resource string, status int) *Error {
	return &Error{Kind: KindHTTP, Resource: resource, Status: status}
}

// DecodeError builds a fetch Error for an unreadable body.
func DecodeError(resource string, err error) *Error {
	return &Error{Kind: KindDecode, Resource: resource, Err: err}
}
