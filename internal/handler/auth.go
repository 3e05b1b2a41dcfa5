package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/ruangdiskusi/webclient/internal/api"
	"github.com/ruangdiskusi/webclient/internal/domain"
	"github.com/ruangdiskusi/webclient/internal/logger"
	mw "github.com/ruangdiskusi/webclient/internal/middleware"
	"github.com/ruangdiskusi/webclient/internal/view"
)

func (h *Handler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	if mw.GetUserFromContext(r) != nil {
		http.Redirect(w, r, "/threads", http.StatusSeeOther)
		return
	}
	h.renderTemplate(w, r, "login.html", view.LoginPage{Email: r.URL.Query().Get("email")})
}

func (h *Handler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/login", "Form tidak valid")
		return
	}
	data := api.LoginRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if err := h.Validate.Struct(data); err != nil {
		h.renderLoginError(w, r, data.Email, "Email dan password wajib diisi")
		return
	}

	resp, err := h.API.Login(r.Context(), data)
	if err != nil {
		h.renderLoginError(w, r, data.Email, userMessage(err))
		return
	}

	maxAge := int(resp.ExpiresIn)
	if maxAge <= 0 {
		maxAge = int((24 * time.Hour).Seconds())
	}
	http.SetCookie(w, &http.Cookie{
		Name:     mw.AccessTokenCookie,
		Value:    resp.AccessToken,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	searchToken := resp.SearchToken
	if searchToken == "" {
		searchToken = h.SearchAPIKey
	}
	h.Sessions.Attach(r.Context(), resp.AccessToken, searchToken, domain.SessionUser{
		Id:        resp.User.Id,
		Username:  resp.User.Username,
		Role:      resp.Role.Name,
		AvatarURL: resp.User.AvatarURL,
	})

	http.Redirect(w, r, "/threads", http.StatusSeeOther)
}

func (h *Handler) renderLoginError(w http.ResponseWriter, r *http.Request, email, msg string) {
	redirectWithError(w, r, "/login?email="+url.QueryEscape(email), msg)
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	token := mw.GetTokenFromContext(r)
	if token != "" {
		if err := h.API.Logout(r.Context(), token); err != nil {
			logger.Log.Warn("upstream logout failed", "error", err)
		}
		h.Sessions.Detach(token)
	}
	mw.ClearSessionCookie(w, h.Public.SecureCookies)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
