package deepskylog

import "fmt"

// AuthenticationError reports that the service rejected the request for the
// named user with HTTP 401 or 403.
type AuthenticationError struct {
	Username   string
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for user %q (status %d)", e.Username, e.StatusCode)
}

// ServerError reports an unexpected HTTP status from the service: a 5xx
// fault, or any other status outside the documented contract (for example a
// 404 for an unknown user). The server answered; contrast [TransportError].
type ServerError struct {
	Resource   string
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("deepskylog server error for %s: status %d", e.Resource, e.StatusCode)
}

// MalformedResponseError reports a 200 response whose body is not valid JSON
// or not the expected flat ID-to-attributes mapping.
type MalformedResponseError struct {
	Resource string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed data for %s: %s", e.Resource, e.Reason)
}

// TransportError reports that no HTTP response was received at all: the
// connection failed, timed out, or the host could not be resolved. Callers
// can distinguish "the server rejected this" ([AuthenticationError],
// [ServerError]) from "the server was unreachable".
type TransportError struct {
	Resource string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("deepskylog request for %s failed: %v", e.Resource, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UnknownInstrumentTypeError reports an instrument-type lookup outside the
// closed enumeration, by name or by code.
type UnknownInstrumentTypeError struct {
	Name string
	Code int
}

func (e *UnknownInstrumentTypeError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown instrument type %q", e.Name)
	}
	return fmt.Sprintf("unknown instrument type code %d", e.Code)
}
