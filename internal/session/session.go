// Package session tracks signed-in users server-side. Each session owns the
// user's notification store, the realtime channel feeding it, and the poller
// backing the channel up.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ruangdiskusi/webclient/internal/domain"
	"github.com/ruangdiskusi/webclient/internal/logger"
	"github.com/ruangdiskusi/webclient/internal/notification"
	"github.com/ruangdiskusi/webclient/internal/realtime"
	"github.com/ruangdiskusi/webclient/internal/replies"
)

const maxAlerts = 10

// Session is the server-side state for one signed-in user, keyed by the
// access token held in their cookie.
type Session struct {
	ID            string
	User          domain.SessionUser
	Token         string
	SearchToken   string
	Notifications *notification.Store
	Channel       *realtime.Channel

	poller *notification.Poller

	mu       sync.Mutex
	alerts   []notification.Alert
	fetchers map[string]*replies.Fetcher
}

// ThreadView returns the session's reply fetcher for a thread, creating it on
// first view. Sharing the fetcher across requests is what lets a slow page
// load from one tab be discarded when a later one has already landed.
func (s *Session) ThreadView(threadId string, lister replies.PostLister, limit int) *replies.Fetcher {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchers == nil {
		s.fetchers = make(map[string]*replies.Fetcher)
	}
	f, ok := s.fetchers[threadId]
	if !ok {
		f = replies.NewFetcher(lister, s.Token, threadId, limit)
		s.fetchers[threadId] = f
	}
	return f
}

// pushAlert queues a toast for the next rendered page. The queue is bounded;
// oldest alerts fall off.
func (s *Session) pushAlert(a notification.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, a)
	if len(s.alerts) > maxAlerts {
		s.alerts = s.alerts[len(s.alerts)-maxAlerts:]
	}
}

// DrainAlerts returns queued alerts and empties the queue.
func (s *Session) DrainAlerts() []notification.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.alerts
	s.alerts = nil
	return out
}

// Manager holds live sessions keyed by access token.
type Manager struct {
	api          notification.API
	realtimeURL  string
	pollInterval time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(api notification.API, realtimeURL string, pollInterval time.Duration) *Manager {
	return &Manager{
		api:          api,
		realtimeURL:  realtimeURL,
		pollInterval: pollInterval,
		sessions:     make(map[string]*Session),
	}
}

// Attach creates the session for a fresh login: builds the notification
// store, connects the realtime channel, and starts the unread poller. An
// existing session under the same token is detached first.
func (m *Manager) Attach(ctx context.Context, token, searchToken string, user domain.SessionUser) *Session {
	m.Detach(token)

	s := &Session{
		ID:          uuid.NewString(),
		User:        user,
		Token:       token,
		SearchToken: searchToken,
	}
	s.Notifications = notification.NewStore(m.api, token, s.pushAlert)
	s.Channel = realtime.NewChannel(m.realtimeURL, func() string {
		if m.Get(token) == nil {
			return ""
		}
		return token
	}, func(n domain.Notification) {
		s.Notifications.Add(n, true)
	})

	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()

	s.Channel.Connect()

	if err := s.Notifications.FetchUnread(ctx); err != nil {
		logger.Log.Warn("initial unread count fetch failed", "user", user.Username, "error", err)
	}
	if m.pollInterval > 0 {
		s.poller = notification.NewPoller(s.Notifications, m.pollInterval)
		s.poller.Start(context.WithoutCancel(ctx))
	}

	logger.Log.Info("session attached", "user", user.Username, "session_id", s.ID)
	return s
}

// Get returns the session for a token, nil when none is live.
func (m *Manager) Get(token string) *Session {
	if token == "" {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[token]
}

// Detach tears a session down: removes it from the registry first so the
// channel's token lookup fails and no reconnect survives logout.
func (m *Manager) Detach(token string) {
	m.mu.Lock()
	s, ok := m.sessions[token]
	if ok {
		delete(m.sessions, token)
	}
	m.mu.Unlock()
	if !ok {
		return
	}

	if s.poller != nil {
		s.poller.Stop()
	}
	s.Channel.Disconnect()
	s.Notifications.Clear()
	logger.Log.Info("session detached", "user", s.User.Username, "session_id", s.ID)
}

// Shutdown detaches every live session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	tokens := make([]string, 0, len(m.sessions))
	for token := range m.sessions {
		tokens = append(tokens, token)
	}
	m.mu.Unlock()
	for _, token := range tokens {
		m.Detach(token)
	}
}

// Count reports live sessions, used by the metrics gauge.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
