package feed

import (
	"context"
	"io"
	"net/http"
)

// Client fetches prediction snapshots from the feed endpoint.
//
// The client performs exactly one uncached GET per call and applies no retry
// policy of its own; retry cadence belongs to the poll scheduler. No request
// timeout is set either: a slow feed only delays the next scheduling decision,
// it never overlaps cycles.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a feed client for the given endpoint URL.
func NewClient(feedURL string) *Client {
	return &Client{
		url:        feedURL,
		httpClient: &http.Client{},
	}
}

// FetchPredictions performs one GET against the feed and returns the decoded
// envelope. Errors are one of *TransportError, *HTTPStatusError or
// *MalformedPayloadError.
func (c *Client) FetchPredictions(ctx context.Context) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	// Every call must reflect the latest server state, so defeat any
	// intermediate response caching.
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPStatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return decodeEnvelope(body)
}
