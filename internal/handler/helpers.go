package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	mw "github.com/ruangdiskusi/webclient/internal/middleware"
	"github.com/ruangdiskusi/webclient/internal/session"

	internal_errors "github.com/ruangdiskusi/webclient/internal/errors"
)

// session returns the live session for the request, nil when anonymous or
// when the server restarted and lost the registry.
func (h *Handler) session(r *http.Request) *session.Session {
	return h.Sessions.Get(mw.GetTokenFromContext(r))
}

func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// redirectWithError sends the user back with the message in the query string.
func redirectWithError(w http.ResponseWriter, r *http.Request, path, msg string) {
	redirectWithParam(w, r, path, "error", msg)
}

func redirectWithSuccess(w http.ResponseWriter, r *http.Request, path, msg string) {
	redirectWithParam(w, r, path, "success", msg)
}

func redirectWithParam(w http.ResponseWriter, r *http.Request, path, key, msg string) {
	u, err := url.Parse(path)
	if err != nil {
		http.Redirect(w, r, "/threads", http.StatusSeeOther)
		return
	}
	q := u.Query()
	q.Set(key, msg)
	u.RawQuery = q.Encode()
	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}

// userMessage extracts a message fit to show: upstream errors carry one,
// anything else collapses to a generic line.
func userMessage(err error) string {
	var statusErr *internal_errors.ErrorWithStatusCode
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}
	return "Terjadi kesalahan, coba lagi nanti"
}
