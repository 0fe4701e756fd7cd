package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
)

type Kind int

const (
	// KindUnauthenticated: no usable token; the caller must log in again.
	KindUnauthenticated Kind = iota + 1
	// KindTransport: connection/DNS/TLS failure. The cause is wrapped
	// unchanged so callers can still unwrap the net error.
	KindTransport
	// KindTimeout: the per-call deadline expired.
	KindTimeout
	// KindRemoteRejected: non-2xx status from the API; Status and Body carry
	// the diagnostics.
	KindRemoteRejected
	// KindDeserialization: the response body did not match the expected shape.
	KindDeserialization
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindRemoteRejected:
		return "remote rejected"
	case KindDeserialization:
		return "deserialization"
	}
	return "unknown"
}

type Error struct {
	Kind   Kind
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRemoteRejected:
		return fmt.Sprintf("remote rejected: status %d: %s", e.Status, e.Body)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.Err)
		}
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, or 0 when err is not a remote error.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return 0
}

func IsUnauthenticated(err error) bool { return KindOf(err) == KindUnauthenticated }
func IsTimeout(err error) bool         { return KindOf(err) == KindTimeout }

func errUnauthenticated(cause error) error {
	return &Error{Kind: KindUnauthenticated, Err: cause}
}

// errTransport classifies a failed http.Client.Do. Deadline and net timeouts
// get their own kind; everything else stays a transport error wrapping the
// original cause.
func errTransport(cause error) error {
	if errors.Is(cause, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: cause}
	}
	var ne net.Error
	if errors.As(cause, &ne) && ne.Timeout() {
		return &Error{Kind: KindTimeout, Err: cause}
	}
	return &Error{Kind: KindTransport, Err: cause}
}
