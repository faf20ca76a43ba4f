package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/contact-qa/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.AIConfig{
		BaseURL:         srv.URL,
		Timeout:         2 * time.Second,
		RetryMaxElapsed: 2 * time.Second,
	}, zaptest.NewLogger(t))
}

func TestClient_Summarize(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat-summary", r.URL.Path)

		var req conversationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Agent: hi", req.Conversation)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`"{\"short_summary\":\"Greeting\",\"detailed_bullet_summary\":\"- said hi\"}"`))
	})

	s, err := c.Summarize(context.Background(), "Agent: hi")
	require.NoError(t, err)
	assert.Equal(t, "Greeting", s.ShortSummary)
	assert.Equal(t, []string{"said hi"}, s.Detailed.Points())
}

func TestClient_Assess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contact-assessment", r.URL.Path)
		_, _ = w.Write([]byte(`{"financial_vulnerability":false,"complaint":true,"complaint_reason":"fees"}`))
	})

	a, err := c.Assess(context.Background(), "Agent: hi")
	require.NoError(t, err)
	assert.True(t, a.Complaint)
	assert.Equal(t, "fees", a.ComplaintReason)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"short_summary":"ok"}`))
	})

	s, err := c.Summarize(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "ok", s.ShortSummary)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_ClientErrorsAreFinal(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.Summarize(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_ErrorBodyIsFailureRegardlessOfStatus(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path == "/chat-summary" {
			_, _ = w.Write([]byte(`{"error":"conversation too long"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"crashed"}`))
	})

	_, err := c.Summarize(context.Background(), "x")
	assert.True(t, IsGatewayError(err))

	_, err = c.Assess(context.Background(), "x")
	assert.True(t, IsGatewayError(err))
	assert.Equal(t, int32(2), calls.Load(), "error bodies are never retried")
}

func TestClient_ContextCancel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Summarize(ctx, "x")
	assert.Error(t, err)
}
