package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruangdiskusi/webclient/internal/api"
	"github.com/ruangdiskusi/webclient/internal/logger"
	mw "github.com/ruangdiskusi/webclient/internal/middleware"
	"github.com/ruangdiskusi/webclient/internal/view"
)

func (h *Handler) MyProfileGetHandler(w http.ResponseWriter, r *http.Request) {
	token := mw.GetTokenFromContext(r)

	me, err := h.API.GetMyProfile(r.Context(), token)
	if err != nil {
		redirectWithError(w, r, "/threads", userMessage(err))
		return
	}
	status, err := h.API.MyGamificationStatus(r.Context(), token)
	if err != nil {
		logger.Log.Warn("gamification status fetch failed", "error", err)
	}

	h.renderTemplate(w, r, "profile.html", view.ProfilePage{Me: me, Status: status})
}

func (h *Handler) ProfileUpdateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/profile", "Form tidak valid")
		return
	}
	data := api.UpdateProfileRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
		Bio:      r.FormValue("bio"),
	}

	if err := h.API.UpdateProfile(r.Context(), mw.GetTokenFromContext(r), data); err != nil {
		redirectWithError(w, r, "/profile", userMessage(err))
		return
	}
	redirectWithSuccess(w, r, "/profile", "Profil diperbarui")
}

// PublicProfileGetHandler shows another user's public page.
func (h *Handler) PublicProfileGetHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := h.API.GetPublicProfile(r.Context(), mw.GetTokenFromContext(r), username)
	if err != nil {
		h.renderTemplateStatus(w, r, "notfound.html",
			view.NotFoundPage{Message: "Pengguna tidak ditemukan"}, http.StatusNotFound)
		return
	}
	h.renderTemplate(w, r, "user.html", view.PublicProfilePage{Profile: profile})
}
