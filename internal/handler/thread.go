package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruangdiskusi/webclient/internal/api"
	"github.com/ruangdiskusi/webclient/internal/domain"
	internal_errors "github.com/ruangdiskusi/webclient/internal/errors"
	"github.com/ruangdiskusi/webclient/internal/logger"
	mw "github.com/ruangdiskusi/webclient/internal/middleware"
	"github.com/ruangdiskusi/webclient/internal/replies"
	"github.com/ruangdiskusi/webclient/internal/richtext"
	"github.com/ruangdiskusi/webclient/internal/view"
)

func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/threads", http.StatusSeeOther)
}

func (h *Handler) ThreadListHandler(w http.ResponseWriter, r *http.Request) {
	token := mw.GetTokenFromContext(r)
	q := api.ThreadQuery{
		CategoryId: r.URL.Query().Get("category"),
		Search:     r.URL.Query().Get("q"),
		Audience:   r.URL.Query().Get("audience"),
		SortBy:     r.URL.Query().Get("sort"),
		Page:       parsePage(r),
		Limit:      h.Public.ThreadsPerPage,
	}

	resp, err := h.API.ListThreads(r.Context(), token, q)
	if err != nil {
		logger.Log.Error("thread list fetch failed", "error", err)
		h.renderTemplateStatus(w, r, "threads.html", view.ThreadListPage{Query: q}, http.StatusBadGateway)
		return
	}

	categories, err := h.API.ListCategories(r.Context(), token)
	if err != nil {
		logger.Log.Warn("category list fetch failed", "error", err)
	}

	page := view.ThreadListPage{
		Categories: categories,
		Meta:       resp.Meta,
		Query:      q,
	}
	for _, t := range resp.Data {
		page.Threads = append(page.Threads, view.NewThreadCard(t))
	}
	h.renderTemplate(w, r, "threads.html", page)
}

// ThreadGetHandler renders one thread with the requested page of its replies.
func (h *Handler) ThreadGetHandler(w http.ResponseWriter, r *http.Request) {
	token := mw.GetTokenFromContext(r)
	user := mw.GetUserFromContext(r)
	slug := chi.URLParam(r, "slug")

	thread, err := h.API.GetThreadBySlug(r.Context(), token, slug)
	if err != nil {
		var statusErr *internal_errors.ErrorWithStatusCode
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			h.renderTemplateStatus(w, r, "notfound.html",
				view.NotFoundPage{Message: "Thread tidak ditemukan"}, http.StatusNotFound)
			return
		}
		logger.Log.Error("thread fetch failed", "slug", slug, "error", err)
		redirectWithError(w, r, "/threads", userMessage(err))
		return
	}

	liked, count := h.threadLikeState(r.Context(), token, user, thread)

	pageNum := parsePage(r)
	fetcher := h.threadFetcher(r, thread.Id)
	page, err := fetcher.Load(r.Context(), pageNum)
	if err != nil {
		if errors.Is(err, replies.ErrStale) {
			// A newer load won; render whatever it made current.
			page = fetcher.Current()
		} else {
			logger.Log.Error("reply page fetch failed", "thread", thread.Id, "page", pageNum, "error", err)
		}
	}

	data := view.ThreadPage{
		Thread:      thread,
		ContentHTML: richtext.Markdown(thread.Content),
		Liked:       liked,
		LikesCount:  count,
		CanModify:   user != nil && (user.IsAdmin() || user.Username == thread.Author.Username),
		Page:        pageNum,
		PostMaxLen:  h.Public.PostMaxLen,
	}
	if page != nil {
		data.Replies = view.RenderReplies(replies.Flatten(page), user)
		data.Page = page.Number
		data.TotalPages = page.TotalPages
		data.TotalItems = page.TotalItems

		// ?reply_to= switches the compose form into reply-to mode when the
		// target is on the current page; a vanished target degrades to a
		// top-level reply form.
		if replyTo := r.URL.Query().Get("reply_to"); replyTo != "" {
			if ref, ok := page.Parents[replyTo]; ok {
				data.ReplyingTo = &ref
			}
		}
	}

	h.renderTemplate(w, r, "thread.html", data)
}

// threadLikeState resolves the authoritative liked flag lazily, keeping the
// embedded payload values as the fallback when the status endpoint fails.
func (h *Handler) threadLikeState(ctx context.Context, token string, user *domain.SessionUser, thread domain.Thread) (bool, int) {
	if user == nil {
		return false, thread.LikesCount
	}
	toggle := replies.NewLikeToggle(h.threadLikeAPI(token, thread.Id), thread.IsLiked, thread.LikesCount)
	toggle.Init(ctx)
	return toggle.Liked(), toggle.Count()
}

func (h *Handler) threadFetcher(r *http.Request, threadId string) *replies.Fetcher {
	if s := h.session(r); s != nil {
		return s.ThreadView(threadId, h.API, h.Public.PostsPerPage)
	}
	return replies.NewFetcher(h.API, mw.GetTokenFromContext(r), threadId, h.Public.PostsPerPage)
}

func (h *Handler) ThreadNewGetHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.API.ListCategories(r.Context(), mw.GetTokenFromContext(r))
	if err != nil {
		redirectWithError(w, r, "/threads", userMessage(err))
		return
	}
	h.renderTemplate(w, r, "thread_form.html", view.ThreadFormPage{Categories: categories})
}

func (h *Handler) ThreadCreateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/threads/new", "Form tidak valid")
		return
	}
	data := api.CreateThreadRequest{
		CategoryId: r.FormValue("category_id"),
		Title:      r.FormValue("title"),
		Content:    r.FormValue("content"),
		Audience:   r.FormValue("audience"),
	}
	if err := h.Validate.Struct(data); err != nil {
		redirectWithError(w, r, "/threads/new", "Semua kolom wajib diisi")
		return
	}

	thread, err := h.API.CreateThread(r.Context(), mw.GetTokenFromContext(r), data)
	if err != nil {
		redirectWithError(w, r, "/threads/new", userMessage(err))
		return
	}
	http.Redirect(w, r, "/threads/"+thread.Slug, http.StatusSeeOther)
}

func (h *Handler) ThreadEditGetHandler(w http.ResponseWriter, r *http.Request) {
	token := mw.GetTokenFromContext(r)
	slug := chi.URLParam(r, "slug")

	thread, err := h.API.GetThreadBySlug(r.Context(), token, slug)
	if err != nil {
		redirectWithError(w, r, "/threads", userMessage(err))
		return
	}
	categories, err := h.API.ListCategories(r.Context(), token)
	if err != nil {
		redirectWithError(w, r, "/threads/"+slug, userMessage(err))
		return
	}
	h.renderTemplate(w, r, "thread_form.html", view.ThreadFormPage{Categories: categories, Thread: &thread})
}

func (h *Handler) ThreadUpdateHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/threads/"+slug, "Form tidak valid")
		return
	}
	data := api.UpdateThreadRequest{
		CategoryId: r.FormValue("category_id"),
		Title:      r.FormValue("title"),
		Content:    r.FormValue("content"),
		Audience:   r.FormValue("audience"),
	}
	if err := h.Validate.Struct(data); err != nil {
		redirectWithError(w, r, "/threads/"+slug+"/edit", "Semua kolom wajib diisi")
		return
	}

	thread, err := h.API.UpdateThread(r.Context(), mw.GetTokenFromContext(r), r.FormValue("thread_id"), data)
	if err != nil {
		redirectWithError(w, r, "/threads/"+slug+"/edit", userMessage(err))
		return
	}
	redirectWithSuccess(w, r, "/threads/"+thread.Slug, "Thread diperbarui")
}

func (h *Handler) ThreadDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteThread(r.Context(), mw.GetTokenFromContext(r), r.FormValue("thread_id")); err != nil {
		redirectWithError(w, r, "/threads/"+chi.URLParam(r, "slug"), userMessage(err))
		return
	}
	redirectWithSuccess(w, r, "/threads", "Thread dihapus")
}

// ReplyCreateHandler submits the compose form. parent_id present means the
// form was in reply-to mode.
func (h *Handler) ReplyCreateHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/threads/"+slug, "Form tidak valid")
		return
	}
	threadId := r.FormValue("thread_id")
	threadURL := fmt.Sprintf("/threads/%s?page=%s", slug, r.FormValue("page"))

	composer := replies.NewComposer(h.Public.PostMaxLen)
	if parentId := r.FormValue("parent_id"); parentId != "" {
		composer.BeginReply(&domain.Post{Id: parentId})
	} else {
		composer.BeginRoot()
	}

	payload, err := composer.Payload(r.FormValue("content"), nil)
	if err != nil {
		var tooLong *replies.TooLongError
		switch {
		case errors.Is(err, replies.ErrEmptyContent):
			redirectWithError(w, r, threadURL, "Balasan tidak boleh kosong")
		case errors.As(err, &tooLong):
			redirectWithError(w, r, threadURL,
				fmt.Sprintf("Balasan terlalu panjang (%d dari maksimal %d karakter)", tooLong.Length, tooLong.Max))
		default:
			redirectWithError(w, r, threadURL, userMessage(err))
		}
		return
	}

	if _, err := h.API.CreatePost(r.Context(), mw.GetTokenFromContext(r), threadId, payload); err != nil {
		redirectWithError(w, r, threadURL, userMessage(err))
		return
	}
	composer.Submitted()

	// Refetch the current page so server-assigned ordering and the rebuilt
	// parent index are what the redirect renders.
	if s := h.session(r); s != nil {
		fetcher := s.ThreadView(threadId, h.API, h.Public.PostsPerPage)
		if _, err := fetcher.Refresh(r.Context()); err != nil && !errors.Is(err, replies.ErrStale) {
			logger.Log.Warn("reply page refresh failed", "thread", threadId, "error", err)
		}
	}
	redirectWithSuccess(w, r, threadURL, "Balasan terkirim")
}

func (h *Handler) PostUpdateHandler(w http.ResponseWriter, r *http.Request) {
	postId := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/threads", "Form tidak valid")
		return
	}
	threadURL := fmt.Sprintf("/threads/%s?page=%s", r.FormValue("slug"), r.FormValue("page"))

	content := r.FormValue("content")
	if richtext.Strip(content) == "" {
		redirectWithError(w, r, threadURL, "Balasan tidak boleh kosong")
		return
	}

	updated, err := h.API.UpdatePost(r.Context(), mw.GetTokenFromContext(r), postId, api.UpdatePostRequest{Content: content})
	if err != nil {
		redirectWithError(w, r, threadURL, userMessage(err))
		return
	}

	// Swap the edited content in place; children and tree shape are untouched.
	if s := h.session(r); s != nil {
		fetcher := s.ThreadView(r.FormValue("thread_id"), h.API, h.Public.PostsPerPage)
		if page := fetcher.Current(); page != nil {
			page.ReplaceLocal(updated)
		}
	}
	redirectWithSuccess(w, r, threadURL, "Balasan diperbarui")
}

// PostDeleteHandler removes a reply. Locally this is display-only: the
// subtree disappears from the held page without re-parenting, and the next
// fetch is what reconciles with the server.
func (h *Handler) PostDeleteHandler(w http.ResponseWriter, r *http.Request) {
	postId := chi.URLParam(r, "id")
	threadURL := fmt.Sprintf("/threads/%s?page=%s", r.FormValue("slug"), r.FormValue("page"))

	if err := h.API.DeletePost(r.Context(), mw.GetTokenFromContext(r), postId); err != nil {
		redirectWithError(w, r, threadURL, userMessage(err))
		return
	}

	if s := h.session(r); s != nil {
		fetcher := s.ThreadView(r.FormValue("thread_id"), h.API, h.Public.PostsPerPage)
		if page := fetcher.Current(); page != nil {
			page.RemoveLocal(postId)
		}
	}
	redirectWithSuccess(w, r, threadURL, "Balasan dihapus")
}
