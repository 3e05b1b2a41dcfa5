package handler

import (
	"net/http"

	"github.com/ruangdiskusi/webclient/internal/search"
	"github.com/ruangdiskusi/webclient/internal/view"
)

// SearchGetHandler queries Meilisearch with the session's tenant token. A
// missing token falls back to the configured key; either way an unreachable
// search host renders the empty state, not an error page.
func (h *Handler) SearchGetHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	token := h.SearchAPIKey
	if s := h.session(r); s != nil && s.SearchToken != "" {
		token = s.SearchToken
	}

	results := search.Results{Query: query}
	if query != "" {
		results = h.Search.Search(token, query)
	}
	h.renderTemplate(w, r, "search.html", view.SearchPage{Results: results})
}
