// Package clienterror defines the typed errors returned by the tariff
// client pipeline. Nothing in the pipeline retries or swallows a failure:
// every error surfaces to the caller as one of these kinds.
package clienterror

import (
	"fmt"
	"strings"
)

// ValidationError reports a structurally required input that is missing
// before a request can even be built. It is never sent over the wire.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid tariff request: %s: %s", e.Field, e.Reason)
}

// TransportError reports an HTTP or network-level failure. StatusCode is
// zero when the request never produced a response (connection error,
// timeout). BodyExcerpt is truncated so large or sensitive payloads do not
// end up in logs.
type TransportError struct {
	StatusCode  int
	BodyExcerpt string
	Timeout     bool
	Err         error
}

func (e *TransportError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("tariff transport: request timed out: %v", e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("tariff transport: unexpected status %d: %s", e.StatusCode, e.BodyExcerpt)
	default:
		return fmt.Sprintf("tariff transport: %v", e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteFault reports a SOAP-level fault returned by the pricing service.
type RemoteFault struct {
	Code    string
	Message string
}

func (e *RemoteFault) Error() string {
	return fmt.Sprintf("remote fault %s: %s", e.Code, e.Message)
}

// ProtocolError reports a response that could not be located or parsed
// into the expected shape. It indicates the wire contract changed and is
// never retriable.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "tariff protocol: " + e.Reason
}

// RemoteValidationError reports a structured error list returned by the
// pricing service when it parsed the request but rejected its business
// content. Messages are surfaced verbatim for display.
type RemoteValidationError struct {
	Messages []string
}

func (e *RemoteValidationError) Error() string {
	return "rejected by pricing service: " + strings.Join(e.Messages, "; ")
}

// EmptyResultError reports a structurally valid response that priced zero
// products. Callers distinguish it from ProtocolError so they can show a
// "no eligible product" message instead of a generic failure.
type EmptyResultError struct {
	SimulationID string
}

func (e *EmptyResultError) Error() string {
	if e.SimulationID != "" {
		return fmt.Sprintf("pricing returned no product for simulation %s", e.SimulationID)
	}
	return "pricing returned no product"
}
