package shared

import (
	"errors"
	"fmt"
)

// RequestError is used when we want a specific error message and StatusCode.
// Handlers join a RequestError into their error chain; routers pull it back
// out with errors.As / errors.Is to pick the status code.
//
// Payload taxonomy errors all carry 400 and are never shown to the caller
// individually. They exist so logs and metrics can tell them apart.
type RequestError struct {
	StatusCode int
	Err        error
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("status %d: err %v", r.StatusCode, r.Err)
}

var (
	ErrMissingAuth   = &RequestError{Err: errors.New("missing authorization header"), StatusCode: 401}
	ErrInvalidFormat = &RequestError{Err: errors.New("invalid authentication format"), StatusCode: 401}
	ErrInvalidKeyLen = &RequestError{Err: errors.New("invalid API key length"), StatusCode: 401}

	ErrInternalServerError = &RequestError{Err: errors.New("internal server error"), StatusCode: 500}
	ErrBadRequest          = &RequestError{Err: errors.New("bad request"), StatusCode: 400}

	ErrMissingPayload   = &RequestError{Err: errors.New("missing payload header"), StatusCode: 400}
	ErrInvalidEncoding  = &RequestError{Err: errors.New("invalid base64 payload"), StatusCode: 400}
	ErrInvalidText      = &RequestError{Err: errors.New("payload is not valid utf-8"), StatusCode: 400}
	ErrMalformedRequest = &RequestError{Err: errors.New("malformed recipe request"), StatusCode: 400}
)

// RejectionReason maps a payload error chain to a short label for metrics.
func RejectionReason(err error) string {
	switch true {
	case errors.Is(err, ErrMissingPayload):
		return "missing_payload"
	case errors.Is(err, ErrInvalidEncoding):
		return "invalid_encoding"
	case errors.Is(err, ErrInvalidText):
		return "invalid_text"
	case errors.Is(err, ErrMalformedRequest):
		return "malformed_request"
	default:
		return "unknown"
	}
}
