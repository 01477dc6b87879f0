/*
Package sentiment talks to the remote emotion classification service.

The service exposes a job-queue style API: a classification job is submitted
with one POST, which returns an event_id handle, and the result is then read
from a newline-delimited event stream at {baseURL}/{event_id}.

Only a failed submission is fatal. Every anomaly on the result side degrades
the label instead of failing the call, so a chat message is never lost to a
flaky classifier.
*/
package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// UnknownLabel is the sentinel label used when the event stream carried no result.
const UnknownLabel = "unknown"

// RemoteError reports a classification job that the remote service rejected or
// never received. Status is zero when the request failed before a response.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("sentiment service error: status %d, body: %s", e.Status, e.Body)
}

// Client issues classification jobs against a remote classifier endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a Client for the given endpoint. The timeout bounds
// each of the two HTTP calls a classification makes.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Classify submits the text as a classification job and returns the label the
// service produced.
//
// A transport failure or non-2xx response on the submission itself returns a
// *RemoteError. From that point on the call cannot fail: a submit response
// without a usable event_id yields the raw response body as the label, and any
// problem reading the result stream yields a descriptive fallback label.
func (c *Client) Classify(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(map[string]any{"data": []string{text}})
	if err != nil {
		return "", fmt.Errorf("marshal classification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", &RemoteError{Body: err.Error()}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &RemoteError{Status: res.StatusCode, Body: err.Error()}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &RemoteError{Status: res.StatusCode, Body: string(body)}
	}

	eventID, ok := parseEventID(body)
	if !ok {
		// No job handle: the submit body is the best signal we have.
		return string(body), nil
	}

	return c.fetchLabel(ctx, eventID), nil
}

// fetchLabel reads the event stream for the given job handle and extracts the
// label. All failures here are folded into the returned label.
func (c *Client) fetchLabel(ctx context.Context, eventID string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+eventID, nil)
	if err != nil {
		return fmt.Sprintf("sentiment stream error: %v", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Sprintf("sentiment stream error: %v", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Sprintf("sentiment stream error: %v", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Sprintf("sentiment stream error: status %d, body: %s", res.StatusCode, string(body))
	}

	label, ok := labelFromStream(string(body))
	if !ok {
		return UnknownLabel
	}
	return label
}

// parseEventID extracts the job handle from a submit response body.
// Malformed JSON and a missing or blank field are both reported as absent
// rather than as errors.
func parseEventID(body []byte) (string, bool) {
	var submit struct {
		EventID string `json:"event_id"`
	}
	if err := json.Unmarshal(body, &submit); err != nil {
		return "", false
	}
	if strings.TrimSpace(submit.EventID) == "" {
		return "", false
	}
	return submit.EventID, true
}
