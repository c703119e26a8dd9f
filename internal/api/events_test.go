package api_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pickleplanner/internal/api/apierr"
	"github.com/mcoot/pickleplanner/internal/events"
)

// readEvent reads one event from the stream, skipping keepalive comments
func readEvent(t *testing.T, r *bufio.Reader) (name, data string) {
	t.Helper()

	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimSuffix(line, "\n")

		switch {
		case line == "":
			if name != "" {
				return name, data
			}
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data += strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestSessionEventStream(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts)

	srv := httptest.NewServer(ts.handler)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/sessions/"+id+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	stream := bufio.NewReader(resp.Body)
	name, _ := readEvent(t, stream)
	require.Equal(t, events.EventConnected, name)

	rr := ts.request(http.MethodPost, "/api/v1/sessions/"+id+"/matches/1/start", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	name, data := readEvent(t, stream)
	assert.Equal(t, events.EventMatchStarted, name)
	assert.Contains(t, data, `"number":1`)

	name, data = readEvent(t, stream)
	assert.Equal(t, events.EventSessionStatus, name)
	assert.JSONEq(t, `{"session_id":"`+id+`","status":"in_progress"}`, data)

	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+id+"/matches/1/result", map[string]any{"team1_points": 11, "team2_points": 6})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	name, data = readEvent(t, stream)
	assert.Equal(t, events.EventMatchCompleted, name)
	assert.Contains(t, data, `"team1_points":11`)
	assert.Contains(t, data, `"score_changes"`)

	rr = ts.request(http.MethodDelete, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	name, _ = readEvent(t, stream)
	assert.Equal(t, events.EventSessionDeleted, name)
}

func TestSessionEventStreamUnknownSession(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/sessions/missing/events", nil)
	assertErrorCode(t, rr, http.StatusNotFound, apierr.CodeSessionNotFound)
}
