package openai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekaraca/cardscan/internal/entity"
	"github.com/ekaraca/cardscan/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExtract(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":" {\"name\":\"Ali\"} "}}]}`))
	})

	reply, err := c.Extract(context.Background(), llm.ExtractRequest{
		OCRText: "Ali Veli\n0532 123 45 67",
		Hints:   entity.CandidateHints{Phones: []string{"0532 123 45 67"}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Ali"}`, reply)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 3)
	user := msgs[1].(map[string]any)["content"].(string)
	assert.Contains(t, user, "Ali Veli")
	assert.Contains(t, user, "0532 123 45 67")
}

func TestExtractHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	})
	_, err := c.Extract(context.Background(), llm.ExtractRequest{OCRText: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestExtractNoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	_, err := c.Extract(context.Background(), llm.ExtractRequest{OCRText: "x"})
	assert.Error(t, err)
}
