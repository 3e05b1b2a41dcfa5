package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruangdiskusi/webclient/internal/logger"
	"github.com/ruangdiskusi/webclient/internal/notification"
	"github.com/ruangdiskusi/webclient/internal/view"
)

// NotificationsGetHandler renders the notification page from the session
// store after a pull refresh.
func (h *Handler) NotificationsGetHandler(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	if s == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := s.Notifications.Fetch(r.Context(), h.Public.NotificationLimit, 0); err != nil {
		logger.Log.Warn("notification fetch failed", "error", err)
	}
	if err := s.Notifications.FetchUnread(r.Context()); err != nil {
		logger.Log.Warn("unread count fetch failed", "error", err)
	}

	data := view.NotificationsPage{Unread: s.Notifications.Unread()}
	for _, n := range s.Notifications.List() {
		data.Notifications = append(data.Notifications, view.NotificationRow{
			Notification: n,
			Link:         notification.LinkFor(n),
		})
	}
	h.renderTemplate(w, r, "notifications.html", data)
}

// NotificationFragmentHandler serves the unread count and any queued alerts
// as JSON. The navbar script polls it so the badge and toasts update without
// a page load; alerts are drained, so each one is delivered at most once.
func (h *Handler) NotificationFragmentHandler(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	if s == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	type fragment struct {
		Unread int                  `json:"unread"`
		Alerts []notification.Alert `json:"alerts"`
	}
	payload := fragment{
		Unread: s.Notifications.Unread(),
		Alerts: s.DrainAlerts(),
	}
	if payload.Alerts == nil {
		payload.Alerts = []notification.Alert{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.Warn("notification fragment encode failed", "error", err)
	}
}

// NotificationReadHandler marks one notification read, then follows its link.
func (h *Handler) NotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	if s == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	notificationId := chi.URLParam(r, "id")

	if err := s.Notifications.MarkRead(r.Context(), notificationId); err != nil {
		redirectWithError(w, r, "/notifications", userMessage(err))
		return
	}

	target := r.FormValue("link")
	if target == "" || target[0] != '/' {
		target = "/notifications"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) NotificationReadAllHandler(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	if s == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := s.Notifications.MarkAllRead(r.Context()); err != nil {
		redirectWithError(w, r, "/notifications", userMessage(err))
		return
	}
	http.Redirect(w, r, "/notifications", http.StatusSeeOther)
}
