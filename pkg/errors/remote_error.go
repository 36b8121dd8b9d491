package custom_error

import "fmt"

type CustomError interface {
	Error() string
}

// TransportError means the request to the remote Arkan backend never
// completed (DNS, connect, timeout). The action that triggered it keeps
// its previous state.
type TransportError struct {
	Endpoint string
	Err      error
}

// RemoteError means the backend answered but refused the operation,
// either with a non-2xx status or a {"success":false} payload. Message
// carries the backend's text verbatim so it can be shown to the user.
type RemoteError struct {
	Endpoint string
	Status   int
	Message  string
}

// DecodeError means the backend answered with a body that is neither
// valid JSON nor the plain-text success fallback.
type DecodeError struct {
	Endpoint string
	Body     string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote %s: transport failure: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote %s: %s", e.Endpoint, e.Message)
	}
	return fmt.Sprintf("remote %s: rejected with status %d", e.Endpoint, e.Status)
}

func (e *DecodeError) Error() string {
	body := e.Body
	if len(body) > 120 {
		body = body[:120] + "..."
	}
	return fmt.Sprintf("remote %s: unparseable response: %q", e.Endpoint, body)
}
