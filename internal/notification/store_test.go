package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruangdiskusi/webclient/internal/domain"
)

type fakeAPI struct {
	listResult   []domain.Notification
	listErr      error
	unreadResult int
	unreadErr    error
	markErr      error
	markAllErr   error

	markedIds   []string
	markAllHits int
}

func (f *fakeAPI) ListNotifications(_ context.Context, _ string, _, _ int) ([]domain.Notification, error) {
	return f.listResult, f.listErr
}

func (f *fakeAPI) UnreadCount(_ context.Context, _ string) (int, error) {
	return f.unreadResult, f.unreadErr
}

func (f *fakeAPI) MarkNotificationRead(_ context.Context, _, id string) error {
	f.markedIds = append(f.markedIds, id)
	return f.markErr
}

func (f *fakeAPI) MarkAllNotificationsRead(_ context.Context, _ string) error {
	f.markAllHits++
	return f.markAllErr
}

func notif(id string) domain.Notification {
	return domain.Notification{
		Id:         id,
		Type:       domain.NotificationReplyThread,
		EntityType: domain.EntityThread,
		EntitySlug: "diskusi-" + id,
		Message:    "membalas thread kamu",
		CreatedAt:  time.Now(),
	}
}

func TestAddPrependsAndIncrementsUnread(t *testing.T) {
	s := NewStore(&fakeAPI{}, "token", nil)

	s.Add(notif("n1"), false)
	s.Add(notif("n2"), false)
	s.Add(notif("n3"), false)

	items := s.List()
	require.Len(t, items, 3)
	assert.Equal(t, "n3", items[0].Id, "newest notification should be first")
	assert.Equal(t, "n1", items[2].Id)
	assert.Equal(t, 3, s.Unread())
}

func TestAddDiscardsDuplicateId(t *testing.T) {
	s := NewStore(&fakeAPI{}, "token", nil)

	s.Add(notif("n1"), false)
	s.Add(notif("n1"), false)

	assert.Len(t, s.List(), 1)
	assert.Equal(t, 1, s.Unread(), "duplicate delivery must not bump the counter")
}

func TestAddFiresAlert(t *testing.T) {
	var got []Alert
	s := NewStore(&fakeAPI{}, "token", func(a Alert) { got = append(got, a) })

	s.Add(notif("n1"), true)
	s.Add(notif("n2"), false)
	s.Add(notif("n1"), true) // duplicate, no alert

	require.Len(t, got, 1)
	assert.Equal(t, "💬 Balasan Baru", got[0].Title)
	assert.Equal(t, "/threads/diskusi-n1", got[0].Link)
}

func TestFetchReplacesWholesale(t *testing.T) {
	api := &fakeAPI{listResult: []domain.Notification{notif("s1"), notif("s2")}}
	s := NewStore(api, "token", nil)
	s.Add(notif("pushed"), false)

	require.NoError(t, s.Fetch(context.Background(), 20, 0))

	items := s.List()
	require.Len(t, items, 2)
	assert.Equal(t, "s1", items[0].Id)
	assert.Equal(t, "s2", items[1].Id)
}

func TestFetchCollapsesDuplicateIds(t *testing.T) {
	api := &fakeAPI{listResult: []domain.Notification{notif("s1"), notif("s2"), notif("s1"), notif("s3")}}
	s := NewStore(api, "token", nil)

	require.NoError(t, s.Fetch(context.Background(), 20, 0))

	items := s.List()
	require.Len(t, items, 3, "historical duplicates must not reach the held list")
	assert.Equal(t, "s1", items[0].Id)
	assert.Equal(t, "s2", items[1].Id)
	assert.Equal(t, "s3", items[2].Id)
}

func TestFetchErrorKeepsHeldList(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("upstream down")}
	s := NewStore(api, "token", nil)
	s.Add(notif("n1"), false)

	require.Error(t, s.Fetch(context.Background(), 20, 0))
	assert.Len(t, s.List(), 1)
}

func TestMarkReadOptimistic(t *testing.T) {
	api := &fakeAPI{}
	s := NewStore(api, "token", nil)
	s.Add(notif("n1"), false)
	s.Add(notif("n2"), false)

	require.NoError(t, s.MarkRead(context.Background(), "n1"))

	items := s.List()
	assert.True(t, items[1].IsRead)
	assert.False(t, items[0].IsRead)
	assert.Equal(t, 1, s.Unread())
	assert.Equal(t, []string{"n1"}, api.markedIds)
}

func TestMarkReadRollsBackOnFailure(t *testing.T) {
	api := &fakeAPI{markErr: errors.New("500")}
	s := NewStore(api, "token", nil)
	s.Add(notif("n1"), false)

	require.Error(t, s.MarkRead(context.Background(), "n1"))

	assert.False(t, s.List()[0].IsRead, "read flag should be restored")
	assert.Equal(t, 1, s.Unread(), "unread count should be restored")
}

func TestMarkReadAlreadyReadIsNoop(t *testing.T) {
	api := &fakeAPI{}
	s := NewStore(api, "token", nil)
	s.Add(notif("n1"), false)
	require.NoError(t, s.MarkRead(context.Background(), "n1"))
	require.NoError(t, s.MarkRead(context.Background(), "n1"))

	assert.Equal(t, []string{"n1"}, api.markedIds, "second mark should not hit the api")
	assert.Equal(t, 0, s.Unread())
}

func TestMarkReadUnknownIdIsNoop(t *testing.T) {
	api := &fakeAPI{}
	s := NewStore(api, "token", nil)
	s.Add(notif("n1"), false)

	require.NoError(t, s.MarkRead(context.Background(), "ghost"))
	assert.Empty(t, api.markedIds)
	assert.Equal(t, 1, s.Unread())
}

func TestUnreadNeverGoesNegative(t *testing.T) {
	api := &fakeAPI{}
	s := NewStore(api, "token", nil)
	s.Add(notif("n1"), false)

	// Pull path can report fewer unread than the local decrements assume.
	require.NoError(t, s.FetchUnread(context.Background()))
	require.NoError(t, s.MarkRead(context.Background(), "n1"))
	assert.Equal(t, 0, s.Unread())
}

func TestMarkAllRead(t *testing.T) {
	api := &fakeAPI{}
	s := NewStore(api, "token", nil)
	for i := 0; i < 4; i++ {
		s.Add(notif(fmt.Sprintf("n%d", i)), false)
	}

	require.NoError(t, s.MarkAllRead(context.Background()))

	for _, n := range s.List() {
		assert.True(t, n.IsRead)
	}
	assert.Equal(t, 0, s.Unread())
	assert.Equal(t, 1, api.markAllHits)
}

func TestMarkAllReadRollsBackOnFailure(t *testing.T) {
	api := &fakeAPI{markAllErr: errors.New("500")}
	s := NewStore(api, "token", nil)
	s.Add(notif("n1"), false)
	s.Add(notif("n2"), false)
	require.NoError(t, s.MarkRead(context.Background(), "n1"))

	require.Error(t, s.MarkAllRead(context.Background()))

	items := s.List()
	assert.False(t, items[0].IsRead, "n2 restored to unread")
	assert.True(t, items[1].IsRead, "n1 stays read from before")
	assert.Equal(t, 1, s.Unread())
}

func TestClear(t *testing.T) {
	s := NewStore(&fakeAPI{}, "token", nil)
	s.Add(notif("n1"), false)
	s.Clear()
	assert.Empty(t, s.List())
	assert.Equal(t, 0, s.Unread())
}
