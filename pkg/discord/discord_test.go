package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"token-srv/pkg/log"
)

func TestNew_RequiresWebhook(t *testing.T) {
	_, err := New(log.NewNop(), Webhook{ID: "id"}, Config{})
	assert.Error(t, err)
}

func TestReportBug_PostsToWebhook(t *testing.T) {
	var got WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/id/secret", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d, err := New(log.NewNop(), Webhook{ID: "id", Token: "secret"}, Config{BaseURL: srv.URL})
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.ReportBug(context.Background(), "boom"))
	assert.Contains(t, got.Content, "boom")
	assert.Equal(t, DefaultUsername, got.Username)
}

func TestReportBug_TruncatesLongMessages(t *testing.T) {
	var got WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d, err := New(log.NewNop(), Webhook{ID: "id", Token: "t"}, Config{BaseURL: srv.URL})
	require.NoError(t, err)

	require.NoError(t, d.ReportBug(context.Background(), strings.Repeat("x", 5000)))
	assert.LessOrEqual(t, len(got.Content), MaxMessageLength)
	assert.True(t, strings.HasSuffix(got.Content, "```"))
}

func TestReportBug_RetriesThenFails(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d, err := New(log.NewNop(), Webhook{ID: "id", Token: "t"}, Config{
		BaseURL:    srv.URL,
		RetryCount: 2,
		RetryDelay: time.Millisecond,
	})
	require.NoError(t, err)

	err = d.ReportBug(context.Background(), "boom")
	assert.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}
