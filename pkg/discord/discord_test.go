package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresWebhook(t *testing.T) {
	_, err := New(nil, Webhook{ID: " ", Token: "x"})
	assert.ErrorIs(t, err, errWebhookRequired)
}

func TestReportBugRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hook-id/hook-token", r.URL.Path)
		var p WebhookPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Len(t, p.Embeds, 1)
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d, err := New(nil, Webhook{ID: "hook-id", Token: "hook-token"},
		WithBaseURL(srv.URL), WithRetry(2, time.Millisecond))
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.ReportBug(context.Background(), "panic: boom"))
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestSendErrorGivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	d, err := New(nil, Webhook{ID: "a", Token: "b"}, WithBaseURL(srv.URL), WithRetry(1, time.Millisecond))
	require.NoError(t, err)

	err = d.SendError(context.Background(), "push failed", "redis down", errors.New("dial tcp"))
	assert.Error(t, err)
}
