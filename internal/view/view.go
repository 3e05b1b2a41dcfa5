// Package view holds the template-facing shapes of each page. Handlers build
// these from domain data; templates never touch the API types directly.
package view

import (
	"html/template"

	"github.com/ruangdiskusi/webclient/internal/api"
	"github.com/ruangdiskusi/webclient/internal/domain"
	"github.com/ruangdiskusi/webclient/internal/notification"
	"github.com/ruangdiskusi/webclient/internal/replies"
	"github.com/ruangdiskusi/webclient/internal/richtext"
	"github.com/ruangdiskusi/webclient/internal/search"
)

// CommonData is available to every page template as .Common.
type CommonData struct {
	Error   string
	Success string
	User    *domain.SessionUser
	Unread  int
	Alerts  []notification.Alert
}

// === Threads ===

type ThreadCard struct {
	domain.Thread
	Snippet string
}

func NewThreadCard(t domain.Thread) ThreadCard {
	return ThreadCard{Thread: t, Snippet: richtext.Snippet(t.Content, 200)}
}

type ThreadListPage struct {
	Threads    []ThreadCard
	Categories []domain.Category
	Meta       domain.PaginationMeta
	Query      api.ThreadQuery
}

type ThreadFormPage struct {
	Categories []domain.Category
	Thread     *domain.Thread // set when editing
}

// Reply is one row of the rendered reply list.
type Reply struct {
	Post        *domain.Post
	ContentHTML template.HTML
	Depth       int
	Indent      int
	Nested      bool
	ReplyingTo  *replies.ParentRef
	CanModify   bool // author or admin
}

// RenderReplies converts the flattened render list into template rows,
// sanitizing and rendering each post body.
func RenderReplies(rendered []replies.RenderedPost, viewer *domain.SessionUser) []Reply {
	out := make([]Reply, 0, len(rendered))
	for _, r := range rendered {
		out = append(out, Reply{
			Post:        r.Post,
			ContentHTML: richtext.Markdown(r.Post.Content),
			Depth:       r.Depth,
			Indent:      r.Indent,
			Nested:      r.Nested,
			ReplyingTo:  r.ReplyingTo,
			CanModify:   canModify(viewer, r.Post.Author.Username),
		})
	}
	return out
}

func canModify(viewer *domain.SessionUser, author string) bool {
	if viewer == nil {
		return false
	}
	return viewer.IsAdmin() || viewer.Username == author
}

type ThreadPage struct {
	Thread      domain.Thread
	ContentHTML template.HTML
	Liked       bool
	LikesCount  int
	CanModify   bool

	Replies    []Reply
	Page       int
	TotalPages int
	TotalItems int

	// Compose state for the reply form: ReplyingTo set means the form is in
	// reply-to mode and submits the target's id as parent_id.
	ReplyingTo *replies.ParentRef
	PostMaxLen int
}

// === Auth ===

type LoginPage struct {
	Email string
}

// === Notifications ===

type NotificationRow struct {
	domain.Notification
	Link string
}

type NotificationsPage struct {
	Notifications []NotificationRow
	Unread        int
}

// === Profiles ===

type ProfilePage struct {
	Me     api.UserWithProfile
	Status domain.GamificationStatus
}

type PublicProfilePage struct {
	Profile domain.PublicProfile
}

// === Menfess ===

type MenfessCard struct {
	domain.Menfess
	ContentHTML template.HTML
}

type MenfessPage struct {
	Items []MenfessCard
	Meta  domain.PaginationMeta
}

// === Gamification ===

type LeaderboardPage struct {
	Entries []domain.LeaderboardEntry
	Mine    domain.GamificationStatus
}

// === Search ===

type SearchPage struct {
	Results search.Results
}

// === Admin ===

type AdminUsersPage struct {
	Users []api.UserWithProfile
}

type AdminCategoriesPage struct {
	Categories []domain.Category
}

// === Errors ===

type NotFoundPage struct {
	Message string
}
