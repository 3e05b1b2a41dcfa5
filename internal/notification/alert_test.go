package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruangdiskusi/webclient/internal/domain"
)

func TestAlertTitles(t *testing.T) {
	cases := []struct {
		typ   domain.NotificationType
		title string
	}{
		{domain.NotificationLikeThread, "❤️ Like Baru"},
		{domain.NotificationLikePost, "❤️ Like Baru"},
		{domain.NotificationReplyThread, "💬 Balasan Baru"},
		{domain.NotificationReplyPost, "💬 Balasan Baru"},
		{domain.NotificationRankUp, "🎉 Naik Rank!"},
		{"something_new", "🔔 Notifikasi"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.title, titleFor(tc.typ), "type %s", tc.typ)
	}
}

func TestAlertLinkRankUpGoesToLeaderboard(t *testing.T) {
	n := domain.Notification{
		Type:       domain.NotificationRankUp,
		EntityType: domain.EntityGamification,
		EntitySlug: "ignored",
	}
	assert.Equal(t, "/leaderboard", LinkFor(n))
}

func TestAlertLinkUsesEntitySlug(t *testing.T) {
	n := domain.Notification{
		Type:       domain.NotificationReplyPost,
		EntityType: domain.EntityPost,
		EntitySlug: "curhat-ujian",
	}
	assert.Equal(t, "/threads/curhat-ujian", LinkFor(n))
}

func TestAlertLinkFallsBackToThreadList(t *testing.T) {
	n := domain.Notification{
		Type:       domain.NotificationLikeThread,
		EntityType: domain.EntityThread,
	}
	assert.Equal(t, "/threads", LinkFor(n))
}

func TestAlertBodyCarriesMessage(t *testing.T) {
	a := alertFor(domain.Notification{
		Type:    domain.NotificationLikePost,
		Message: "menyukai balasan kamu",
	})
	assert.Equal(t, "menyukai balasan kamu", a.Body)
}
