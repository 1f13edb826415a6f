package backend

import "fmt"

// APIError is a non-2xx response from the platform backend. Message
// carries the server-provided error text verbatim so it can be shown
// to the user.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: status %d: %s", e.Status, e.Message)
}

// NetworkError is a transport-level failure: the request never
// produced a backend verdict. Callers surface it distinctly from a
// server rejection and never retry automatically.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("backend: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
