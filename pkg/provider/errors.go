package provider

import (
	"net/http"
)

// RemoteAPIError is returned when the synthesis endpoint answers with a
// non-success status or a body without audio.
type RemoteAPIError struct {
	StatusCode int
	Body       string
}

func (e *RemoteAPIError) Error() string {
	if e.Body == "" {
		return "api error: " + http.StatusText(e.StatusCode)
	}

	return "api error: " + e.Body
}

type AudioDecodeError struct {
	Err error
}

func (e *AudioDecodeError) Error() string {
	return "audio decode error: " + e.Err.Error()
}

func (e *AudioDecodeError) Unwrap() error {
	return e.Err
}
