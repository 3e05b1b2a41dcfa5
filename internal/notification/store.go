// Package notification holds a signed-in user's notification list and unread
// count. Two sources race to populate it: pushes from the realtime channel
// and periodic/initial fetches. Both paths guard id uniqueness, which keeps
// that race harmless and lets rendering key on the id.
package notification

import (
	"context"
	"sync"

	"github.com/ruangdiskusi/webclient/internal/domain"
	"github.com/ruangdiskusi/webclient/internal/logger"
)

// API is the slice of the upstream client the store needs.
type API interface {
	ListNotifications(ctx context.Context, token string, limit, offset int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, token string) (int, error)
	MarkNotificationRead(ctx context.Context, token, notificationId string) error
	MarkAllNotificationsRead(ctx context.Context, token string) error
}

// AlertFunc surfaces a transient alert for a pushed notification.
type AlertFunc func(Alert)

type Store struct {
	api   API
	token string
	alert AlertFunc

	mu     sync.Mutex
	items  []domain.Notification
	unread int
}

func NewStore(api API, token string, alert AlertFunc) *Store {
	return &Store{api: api, token: token, alert: alert}
}

// Add is the push path. A notification whose id is already held is discarded
// silently: duplicate delivery from overlapping push and pull paths, or
// reconnection replay, must leave the list and unread count unchanged,
// because downstream rendering keys on the id.
func (s *Store) Add(n domain.Notification, showAlert bool) {
	s.mu.Lock()
	for _, held := range s.items {
		if held.Id == n.Id {
			s.mu.Unlock()
			return
		}
	}
	s.items = append([]domain.Notification{n}, s.items...)
	s.unread++
	alert := s.alert
	s.mu.Unlock()

	if showAlert && alert != nil {
		alert(alertFor(n))
	}
}

// Fetch is the pull path: a wholesale replace of the held list, most recent
// first. No item-wise merge with pushed entries; the server is the source of
// truth and the next pull reconciles. Duplicate ids in the fetched list are
// collapsed to the first occurrence so the store always holds unique ids.
func (s *Store) Fetch(ctx context.Context, limit, offset int) error {
	items, err := s.api.ListNotifications(ctx, s.token, limit, offset)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = dedupById(items)
	s.mu.Unlock()
	return nil
}

func dedupById(items []domain.Notification) []domain.Notification {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, n := range items {
		if _, ok := seen[n.Id]; ok {
			continue
		}
		seen[n.Id] = struct{}{}
		out = append(out, n)
	}
	return out
}

// FetchUnread refreshes the unread counter independently of the list.
func (s *Store) FetchUnread(ctx context.Context) error {
	count, err := s.api.UnreadCount(ctx, s.token)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.unread = count
	s.mu.Unlock()
	return nil
}

// MarkRead flips one notification to read optimistically, floored decrement
// on the counter, then confirms. On failure the snapshot is restored.
func (s *Store) MarkRead(ctx context.Context, notificationId string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.items {
		if s.items[i].Id == notificationId {
			idx = i
			break
		}
	}
	if idx < 0 || s.items[idx].IsRead {
		s.mu.Unlock()
		return nil
	}
	prevUnread := s.unread
	s.items[idx].IsRead = true
	s.unread = max(0, s.unread-1)
	s.mu.Unlock()

	if err := s.api.MarkNotificationRead(ctx, s.token, notificationId); err != nil {
		logger.Log.Warn("mark notification read failed, rolling back", "id", notificationId, "error", err)
		s.mu.Lock()
		for i := range s.items {
			if s.items[i].Id == notificationId {
				s.items[i].IsRead = false
				break
			}
		}
		s.unread = prevUnread
		s.mu.Unlock()
		return err
	}
	return nil
}

// MarkAllRead flips every held notification and zeroes the counter, confirmed
// by a single bulk request, restoring the snapshot on failure.
func (s *Store) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()
	prevRead := make([]bool, len(s.items))
	for i := range s.items {
		prevRead[i] = s.items[i].IsRead
		s.items[i].IsRead = true
	}
	prevUnread := s.unread
	s.unread = 0
	s.mu.Unlock()

	if err := s.api.MarkAllNotificationsRead(ctx, s.token); err != nil {
		logger.Log.Warn("mark all read failed, rolling back", "error", err)
		s.mu.Lock()
		for i := range s.items {
			if i < len(prevRead) {
				s.items[i].IsRead = prevRead[i]
			}
		}
		s.unread = prevUnread
		s.mu.Unlock()
		return err
	}
	return nil
}

// List returns a copy of the held notifications, newest first.
func (s *Store) List() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Unread() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread
}

// Clear drops all held state, used at logout.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.unread = 0
	s.mu.Unlock()
}
