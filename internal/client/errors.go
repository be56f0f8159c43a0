package client

import (
	"errors"
	"fmt"
)

// ErrWalletNotConnected is the precondition failure for registration:
// no connected wallet identity means no submission is attempted.
var ErrWalletNotConnected = errors.New("wallet not connected")

// TransportError is a non-2xx response or network-level failure from
// the marketplace API. StatusCode is zero when the request never got a
// response.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("marketplace error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("marketplace error %d", e.StatusCode)
}

// NotFoundError means the agent id was absent from the scanned
// directory page.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("agent %s not found", e.ID)
}

// ValidationError is a registration form rule violation. Field names
// the first rule that failed; checks short-circuit so only one is
// surfaced at a time.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
