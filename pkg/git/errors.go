package git

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jenkins-x/go-scm/scm"
)

// ErrUnscoped is returned by instance operations on entities that were not
// materialised through a Repository or Organization.
var ErrUnscoped = errors.New("entity is not attached to a repository or organization")

// APIError is returned when the hosting service responds with a non-success
// status.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Rate    scm.Rate
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.Status, e.Message)
}

// DecodeError is returned when a response body can't be mapped onto the
// requested type.
type DecodeError struct {
	Method string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response to %s %s: %s", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnsupportedEncodingError is returned when reading a Blob with an encoding
// that can't be decoded.
type UnsupportedEncodingError struct {
	Encoding string
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("unrecognized encoding: %q", e.Encoding)
}

// UnknownEventError is returned when a hook is subscribed to an event that is
// not in the known vocabulary.
type UnknownEventError struct {
	Event string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown hook event: %q", e.Event)
}

// IsNotFound returns true if the error represents a NotFound response from an
// upstream service.
func IsNotFound(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.Status == http.StatusNotFound
}

func isErrorStatus(i int) bool {
	return i < 200 || i > 299
}

// newAPIError consumes the body of the response, the service reports failures
// as {"message": "..."}, anything else is kept as plain text.
func newAPIError(method, path string, res *scm.Response) *APIError {
	e := &APIError{Method: method, Path: path, Status: res.Status, Rate: res.Rate}
	b, err := io.ReadAll(io.LimitReader(res.Body, 64*1024))
	if err != nil {
		return e
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &body); err == nil && body.Message != "" {
		e.Message = body.Message
		return e
	}
	e.Message = strings.TrimSpace(string(b))
	return e
}
