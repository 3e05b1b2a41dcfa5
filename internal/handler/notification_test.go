package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruangdiskusi/webclient/internal/domain"
	mw "github.com/ruangdiskusi/webclient/internal/middleware"
	"github.com/ruangdiskusi/webclient/internal/notification"
)

func fragmentRequest(h *Handler, token string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/notifications/fragment", nil)
	if token != "" {
		r = r.WithContext(mw.WithUser(r.Context(), &domain.SessionUser{Id: "u1", Username: "alice"}, token))
	}
	w := httptest.NewRecorder()
	h.NotificationFragmentHandler(w, r)
	return w
}

func TestNotificationFragmentServesUnreadAndDrainsAlerts(t *testing.T) {
	backend := &fakeBackend{}
	h := newTestHandler(t, backend)

	s := h.Sessions.Attach(context.Background(), "tok-1", "", domain.SessionUser{Id: "u1", Username: "alice"})
	s.Notifications.Add(domain.Notification{
		Id:      "n1",
		Type:    domain.NotificationReplyThread,
		Message: "bob membalas diskusimu",
	}, true)

	w := fragmentRequest(h, "tok-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var payload struct {
		Unread int                  `json:"unread"`
		Alerts []notification.Alert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, 1, payload.Unread)
	require.Len(t, payload.Alerts, 1)
	assert.Equal(t, "💬 Balasan Baru", payload.Alerts[0].Title)
	assert.Equal(t, "bob membalas diskusimu", payload.Alerts[0].Body)

	w = fragmentRequest(h, "tok-1")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Empty(t, payload.Alerts, "alerts delivered once")
	assert.Equal(t, 1, payload.Unread)
}

func TestNotificationFragmentRequiresSession(t *testing.T) {
	h := newTestHandler(t, &fakeBackend{})

	w := fragmentRequest(h, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
