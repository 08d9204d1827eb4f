package catalog

import (
	"errors"
	"fmt"
)

// Kind classifies catalog client failures. The retry policy keys off it:
// server and fetch errors are transient and retried, everything else is
// authoritative and surfaces immediately.
type Kind int

const (
	// KindOffline means the host reported no network connectivity; no
	// request was attempted.
	KindOffline Kind = iota
	// KindTimeout means a single attempt exceeded the request timeout.
	KindTimeout
	// KindNotFound means the catalog authoritatively does not know the
	// barcode (HTTP 404 or a "product not found" status in the body).
	KindNotFound
	// KindServerError means the catalog answered with an unexpected HTTP
	// status.
	KindServerError
	// KindFetchError means the request could not be completed or the body
	// could not be parsed.
	KindFetchError
	// KindMaxRetriesExceeded means the retry budget ran out; the wrapped
	// error is the last attempt's failure.
	KindMaxRetriesExceeded
)

func (k Kind) String() string {
	switch k {
	case KindOffline:
		return "offline"
	case KindTimeout:
		return "timeout"
	case KindNotFound:
		return "not-found"
	case KindServerError:
		return "server-error"
	case KindFetchError:
		return "fetch-error"
	case KindMaxRetriesExceeded:
		return "max-retries-exceeded"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the typed error returned by the catalog client.
type Error struct {
	Kind       Kind
	Barcode    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("catalog: %s", e.Kind)
	if e.Barcode != "" {
		msg += fmt.Sprintf(" (barcode %s)", e.Barcode)
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError constructs a typed catalog error.
func newError(kind Kind, barcode string, status int, err error) *Error {
	return &Error{Kind: kind, Barcode: barcode, StatusCode: status, Err: err}
}

// IsKind reports whether err is a catalog error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}

// IsNotFound reports whether the catalog authoritatively lacks the product.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsOffline reports whether the lookup was rejected for lack of connectivity.
func IsOffline(err error) bool { return IsKind(err, KindOffline) }

// retryable reports whether the failure is transient. Timeouts, offline
// rejections, and authoritative not-found answers never retry.
func retryable(err error) bool {
	var ce *Error
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Kind == KindServerError || ce.Kind == KindFetchError
}
