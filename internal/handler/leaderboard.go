package handler

import (
	"net/http"

	"github.com/ruangdiskusi/webclient/internal/logger"
	mw "github.com/ruangdiskusi/webclient/internal/middleware"
	"github.com/ruangdiskusi/webclient/internal/view"
)

func (h *Handler) LeaderboardGetHandler(w http.ResponseWriter, r *http.Request) {
	token := mw.GetTokenFromContext(r)

	entries, err := h.API.Leaderboard(r.Context(), token)
	if err != nil {
		redirectWithError(w, r, "/threads", userMessage(err))
		return
	}

	data := view.LeaderboardPage{Entries: entries}
	if mine, err := h.API.MyGamificationStatus(r.Context(), token); err != nil {
		logger.Log.Warn("gamification status fetch failed", "error", err)
	} else {
		data.Mine = mine
	}
	h.renderTemplate(w, r, "leaderboard.html", data)
}
