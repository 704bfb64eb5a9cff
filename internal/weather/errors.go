package weather

import (
	"errors"
	"net/http"
)

// Kind classifies a weather error by its cause. Every failure that
// crosses a package boundary carries exactly one Kind.
type Kind string

const (
	// KindInvalidInput means the caller supplied an unusable query.
	KindInvalidInput Kind = "invalid_input"

	// KindNotFound means no location matched the query even after the
	// geocoding fallback.
	KindNotFound Kind = "not_found"

	// KindMissingCredential means the provider has no API key configured.
	KindMissingCredential Kind = "missing_credential"

	// KindUpstreamUnauthorized means the provider rejected our API key.
	KindUpstreamUnauthorized Kind = "upstream_unauthorized"

	// KindUpstreamRateLimited means the provider throttled us.
	KindUpstreamRateLimited Kind = "upstream_rate_limited"

	// KindUpstreamTimeout means an upstream call ran out of time.
	KindUpstreamTimeout Kind = "upstream_timeout"

	// KindUpstreamUnreachable means an upstream call failed at the
	// transport level.
	KindUpstreamUnreachable Kind = "upstream_unreachable"

	// KindMalformedUpstream means an upstream response decoded but was
	// missing required fields.
	KindMalformedUpstream Kind = "malformed_upstream"

	// KindUnexpected is the fallback for anything unclassified.
	KindUnexpected Kind = "unexpected"
)

// HTTPStatus maps the kind onto the status code the API surfaces.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstreamUnauthorized:
		return http.StatusUnauthorized
	case KindUpstreamRateLimited:
		return http.StatusTooManyRequests
	case KindUpstreamTimeout:
		return http.StatusGatewayTimeout
	case KindUpstreamUnreachable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is the domain error type. Message is safe to show to callers;
// Err holds the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds a new domain error.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds a new domain error around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain, or KindUnexpected when
// no domain error is present.
func KindOf(err error) Kind {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Kind
	}
	return KindUnexpected
}

// MessageOf extracts the user-safe message from an error chain, or a
// generic message when no domain error is present.
func MessageOf(err error) string {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Message
	}
	return "an unexpected error occurred"
}
