package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/ruangdiskusi/webclient/internal/logger"
	mw "github.com/ruangdiskusi/webclient/internal/middleware"
	"github.com/ruangdiskusi/webclient/internal/view"
)

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common view.CommonData
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateStatus(w, r, name, data, http.StatusOK)
}

func (h *Handler) renderTemplateStatus(w http.ResponseWriter, r *http.Request, name string, data any, status int) {
	tmpl, ok := h.Templates[name]
	if !ok {
		logger.Log.Error("template not found", "template", name)
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	wrapped := TemplateData{
		Data:   data,
		Common: h.commonData(w, r),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// commonData assembles what every page shows: the signed-in user, their
// unread badge, queued realtime alerts, and any flash or query messages.
func (h *Handler) commonData(w http.ResponseWriter, r *http.Request) view.CommonData {
	common := view.CommonData{
		Error:   r.URL.Query().Get("error"),
		Success: r.URL.Query().Get("success"),
		User:    mw.GetUserFromContext(r),
	}
	if flash := mw.PopFlashError(w, r, h.Public.SecureCookies); flash != "" && common.Error == "" {
		common.Error = flash
	}

	if s := h.session(r); s != nil {
		common.Unread = s.Notifications.Unread()
		common.Alerts = s.DrainAlerts()
	}
	return common
}
