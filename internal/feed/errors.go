package feed

import "fmt"

// TransportError indicates the feed request could not be sent or completed.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("feed request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPStatusError indicates the feed responded with a non-success status code.
type HTTPStatusError struct {
	Code int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("feed returned non-success status %d", e.Code)
}

// MalformedPayloadError indicates the response body was not valid JSON or was
// missing required structure.
type MalformedPayloadError struct {
	Err error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("feed payload malformed: %v", e.Err)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}
