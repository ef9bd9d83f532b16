package fetch

import "fmt"

// Kind classifies a fetch failure
type Kind int

const (
	// KindTransport means the request never produced a response (DNS,
	// connect, TLS, timeout)
	KindTransport Kind = iota

	// KindStatus means the server answered with a non-2xx status
	KindStatus

	// KindBody means the response body could not be read in full
	KindBody
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindBody:
		return "body"
	default:
		return "unknown"
	}
}

// Error describes a failed fetch. Every fetch failure is transient by
// contract, the next tick simply tries again.
type Error struct {
	URL        string
	Kind       Kind
	StatusCode int // set only for KindStatus
	Err        error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s error: %v", e.URL, e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Temporary reports whether the failure is transient. It always is: each
// tick is an independent attempt and no failure is fatal to the loop.
func (e *Error) Temporary() bool {
	return true
}
