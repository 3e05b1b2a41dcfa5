package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	mw "github.com/ruangdiskusi/webclient/internal/middleware"
	"github.com/ruangdiskusi/webclient/internal/replies"
)

// threadLikeAPI and postLikeAPI bind the per-target like endpoints to the
// toggle's interface.
type threadLikeAPI struct {
	h        *Handler
	token    string
	threadId string
}

func (a threadLikeAPI) Status(ctx context.Context) (bool, error) {
	return a.h.API.ThreadLikeStatus(ctx, a.token, a.threadId)
}

func (a threadLikeAPI) SetLike(ctx context.Context, like bool) error {
	return a.h.API.SetThreadLike(ctx, a.token, a.threadId, like)
}

func (h *Handler) threadLikeAPI(token, threadId string) replies.LikeAPI {
	return threadLikeAPI{h: h, token: token, threadId: threadId}
}

type postLikeAPI struct {
	h      *Handler
	token  string
	postId string
}

func (a postLikeAPI) Status(ctx context.Context) (bool, error) {
	return a.h.API.PostLikeStatus(ctx, a.token, a.postId)
}

func (a postLikeAPI) SetLike(ctx context.Context, like bool) error {
	return a.h.API.SetPostLike(ctx, a.token, a.postId, like)
}

func (h *Handler) postLikeAPI(token, postId string) replies.LikeAPI {
	return postLikeAPI{h: h, token: token, postId: postId}
}

// ThreadLikeHandler flips the thread like. The form embeds the flag and count
// the page rendered with so the toggle starts from what the user saw.
func (h *Handler) ThreadLikeHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	h.toggleLike(w, r, "/threads/"+slug,
		h.threadLikeAPI(mw.GetTokenFromContext(r), r.FormValue("thread_id")))
}

func (h *Handler) PostLikeHandler(w http.ResponseWriter, r *http.Request) {
	postId := chi.URLParam(r, "id")
	backURL := fmt.Sprintf("/threads/%s?page=%s", r.FormValue("slug"), r.FormValue("page"))
	h.toggleLike(w, r, backURL, h.postLikeAPI(mw.GetTokenFromContext(r), postId))
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request, backURL string, likeAPI replies.LikeAPI) {
	embeddedLiked := r.FormValue("liked") == "true"
	count, _ := strconv.Atoi(r.FormValue("likes_count"))

	toggle := replies.NewLikeToggle(likeAPI, embeddedLiked, count)
	toggle.Init(r.Context())
	if err := toggle.Toggle(r.Context()); err != nil {
		redirectWithError(w, r, backURL, userMessage(err))
		return
	}
	http.Redirect(w, r, backURL, http.StatusSeeOther)
}
