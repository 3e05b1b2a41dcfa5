package handler

import (
	"net/http"

	"github.com/ruangdiskusi/webclient/internal/api"
	mw "github.com/ruangdiskusi/webclient/internal/middleware"
	"github.com/ruangdiskusi/webclient/internal/richtext"
	"github.com/ruangdiskusi/webclient/internal/view"
)

func (h *Handler) MenfessGetHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := h.API.ListMenfess(r.Context(), mw.GetTokenFromContext(r), parsePage(r), h.Public.ThreadsPerPage)
	if err != nil {
		redirectWithError(w, r, "/threads", userMessage(err))
		return
	}

	data := view.MenfessPage{Meta: resp.Meta}
	for _, m := range resp.Data {
		data.Items = append(data.Items, view.MenfessCard{
			Menfess:     m,
			ContentHTML: richtext.Markdown(m.Content),
		})
	}
	h.renderTemplate(w, r, "menfess.html", data)
}

func (h *Handler) MenfessCreateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/menfess", "Form tidak valid")
		return
	}
	content := r.FormValue("content")
	if richtext.Strip(content) == "" {
		redirectWithError(w, r, "/menfess", "Pesan tidak boleh kosong")
		return
	}

	if err := h.API.CreateMenfess(r.Context(), mw.GetTokenFromContext(r), api.CreateMenfessRequest{Content: content}); err != nil {
		redirectWithError(w, r, "/menfess", userMessage(err))
		return
	}
	redirectWithSuccess(w, r, "/menfess", "Menfess terkirim")
}
