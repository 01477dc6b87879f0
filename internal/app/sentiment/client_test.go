package sentiment

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classifierStub builds an httptest server mimicking the remote classifier's
// submit-then-stream protocol. submitHandler serves POST /, streamHandler
// serves GET /{event_id}.
func classifierStub(t *testing.T, submitHandler, streamHandler http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /", submitHandler)
	mux.HandleFunc("GET /{event_id}", streamHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClassifyHappyPath(t *testing.T) {
	var submittedText string

	server := classifierStub(t,
		func(w http.ResponseWriter, r *http.Request) {
			var payload struct {
				Data []string `json:"data"`
			}
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &payload))
			require.Len(t, payload.Data, 1)
			submittedText = payload.Data[0]

			w.Write([]byte(`{"event_id":"ev-42"}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "ev-42", r.PathValue("event_id"))
			w.Write([]byte("event: complete\ndata: [\"POSITIVE\", 0.95]\n"))
		},
	)

	client := NewClient(server.URL, 5*time.Second)
	label, err := client.Classify(context.Background(), "what a great day")

	require.NoError(t, err)
	assert.Equal(t, "POSITIVE", label)
	assert.Equal(t, "what a great day", submittedText)
}

func TestClassifySubmitFailureIsFatal(t *testing.T) {
	server := classifierStub(t,
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model is down", http.StatusInternalServerError)
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("result phase must not run after a failed submission")
		},
	)

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Classify(context.Background(), "hello")

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.Status)
	assert.Contains(t, remoteErr.Body, "model is down")
}

func TestClassifyMissingEventIDFallsBackToSubmitBody(t *testing.T) {
	server := classifierStub(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"detail":"queue full"}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("result phase must not run without a job handle")
		},
	)

	client := NewClient(server.URL, 5*time.Second)
	label, err := client.Classify(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, `{"detail":"queue full"}`, label)
}

func TestClassifyMalformedSubmitBodyFallsBack(t *testing.T) {
	server := classifierStub(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>gateway timeout</html>"))
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("result phase must not run without a job handle")
		},
	)

	client := NewClient(server.URL, 5*time.Second)
	label, err := client.Classify(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "<html>gateway timeout</html>", label)
}

func TestClassifyStreamFailureDegradesLabel(t *testing.T) {
	server := classifierStub(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"event_id":"ev-1"}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "job expired", http.StatusNotFound)
		},
	)

	client := NewClient(server.URL, 5*time.Second)
	label, err := client.Classify(context.Background(), "hello")

	require.NoError(t, err)
	assert.Contains(t, label, "sentiment stream error")
	assert.Contains(t, label, "404")
	assert.Contains(t, label, "job expired")
}

func TestClassifyStreamWithoutResultIsUnknown(t *testing.T) {
	server := classifierStub(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"event_id":"ev-1"}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("data: null\ndata: null\n"))
		},
	)

	client := NewClient(server.URL, 5*time.Second)
	label, err := client.Classify(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, UnknownLabel, label)
}

func TestClassifyHonorsContextCancellation(t *testing.T) {
	server := classifierStub(t,
		func(w http.ResponseWriter, r *http.Request) {
			// Drain the body so the server watches the connection and
			// cancels r.Context() when the client disconnects.
			io.Copy(io.Discard, r.Body)
			<-r.Context().Done()
		},
		func(w http.ResponseWriter, r *http.Request) {},
	)

	client := NewClient(server.URL, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Classify(ctx, "hello")

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Zero(t, remoteErr.Status)
}

func TestParseEventID(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantID string
		wantOK bool
	}{
		{name: "present", body: `{"event_id":"abc123"}`, wantID: "abc123", wantOK: true},
		{name: "absent field", body: `{"detail":"ok"}`, wantOK: false},
		{name: "blank value", body: `{"event_id":"  "}`, wantOK: false},
		{name: "malformed JSON", body: `{"event_id":`, wantOK: false},
		{name: "non-object JSON", body: `[1,2,3]`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := parseEventID([]byte(tt.body))

			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}
