package notification

import "github.com/ruangdiskusi/webclient/internal/domain"

// Alert is a transient toast shown when a notification arrives over the
// realtime channel. Link is a site-relative path to the subject.
type Alert struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Link  string `json:"link"`
}

func alertFor(n domain.Notification) Alert {
	return Alert{
		Title: titleFor(n.Type),
		Body:  n.Message,
		Link:  LinkFor(n),
	}
}

func titleFor(t domain.NotificationType) string {
	switch t {
	case domain.NotificationLikeThread, domain.NotificationLikePost:
		return "❤️ Like Baru"
	case domain.NotificationReplyThread, domain.NotificationReplyPost:
		return "💬 Balasan Baru"
	case domain.NotificationRankUp:
		return "🎉 Naik Rank!"
	default:
		return "🔔 Notifikasi"
	}
}

// LinkFor resolves a deep link to the notification's subject. Rank changes go
// to the leaderboard; anything tied to a thread or post goes to the thread
// page, posts included, since posts render inline there.
func LinkFor(n domain.Notification) string {
	if n.EntityType == domain.EntityGamification || n.Type == domain.NotificationRankUp {
		return "/leaderboard"
	}
	if n.EntitySlug != "" {
		return "/threads/" + n.EntitySlug
	}
	return "/threads"
}
