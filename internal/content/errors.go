package content

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNetwork indicates the request never produced an HTTP response
// (connection refused, DNS failure, timeout).
type ErrNetwork struct {
	Err error
}

func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("content service unreachable: %v", e.Err)
}

func (e *ErrNetwork) Unwrap() error { return e.Err }

// ErrServer indicates the service responded with a non-success status.
type ErrServer struct {
	Status int
	Body   string
}

func (e *ErrServer) Error() string {
	return fmt.Sprintf("content service returned status %d", e.Status)
}

// ErrMalformed indicates the response body could not be parsed as the
// documented shape.
type ErrMalformed struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed content response: %v", e.Err)
}

func (e *ErrMalformed) Unwrap() error { return e.Err }

// ErrEmptyResult indicates the server reported success but returned zero
// questions. Callers decide whether to treat this as an error screen or an
// explicit empty-quiz screen.
var ErrEmptyResult = errors.New("quiz generated with no questions")
