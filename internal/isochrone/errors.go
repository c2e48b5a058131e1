package isochrone

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the remote service answers 2xx with a
// blank body
var ErrEmptyResponse = errors.New("empty response received from the isochrone service")

// maxBodyEcho caps how much of a bad response body is echoed in error
// messages
const maxBodyEcho = 1000

func bodySnippet(body string) string {
	if len(body) > maxBodyEcho {
		return body[:maxBodyEcho]
	}
	return body
}

// RemoteServiceError reports a non-2xx status from the remote service
type RemoteServiceError struct {
	Status int
	Body   string
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("isochrone service returned status %d: %s", e.Status, bodySnippet(e.Body))
}

// MalformedResponseError reports a response body that is not parsable CSV
// or contains no data rows. Body is already truncated for diagnostics.
type MalformedResponseError struct {
	Body string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid CSV data received from the isochrone service: %v (raw content: %s)", e.Err, e.Body)
	}
	return fmt.Sprintf("invalid CSV data received from the isochrone service (raw content: %s)", e.Body)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
