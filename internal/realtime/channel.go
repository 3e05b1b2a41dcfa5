// Package realtime maintains the websocket connection that delivers
// notifications as they are created upstream.
package realtime

import (
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ruangdiskusi/webclient/internal/domain"
	"github.com/ruangdiskusi/webclient/internal/logger"
)

type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateClosing:
		return "closing"
	default:
		return "disconnected"
	}
}

const defaultReconnectDelay = 5 * time.Second

// Handler receives each notification parsed off the wire.
type Handler func(domain.Notification)

// TokenFunc returns the current access token, empty when the session has
// ended. It is consulted at connect time and again before any reconnect, so
// a logout between the two cancels the reconnect.
type TokenFunc func() string

// Channel is a websocket client with a bounded reconnect policy: after an
// abnormal close, exactly one reconnect attempt fires after the delay. A
// normal close (1000) or going-away (1001) means the server ended the
// session on purpose and no reconnect is armed.
type Channel struct {
	url     string
	token   TokenFunc
	handler Handler

	mu             sync.Mutex
	state          State
	conn           *websocket.Conn
	reconnectTimer *time.Timer
	reconnectDelay time.Duration
	dialer         *websocket.Dialer
}

func NewChannel(url string, token TokenFunc, handler Handler) *Channel {
	return &Channel{
		url:            url,
		token:          token,
		handler:        handler,
		reconnectDelay: defaultReconnectDelay,
		dialer:         websocket.DefaultDialer,
	}
}

// Connect dials the notification endpoint. An existing connection is torn
// down first and a dial already in flight wins, so at most one lives at a
// time. Without a token it logs and stays disconnected.
func (c *Channel) Connect() {
	token := c.token()
	if token == "" {
		logger.Log.Warn("realtime connect skipped: no access token")
		return
	}

	c.mu.Lock()
	if c.state == StateConnecting {
		c.mu.Unlock()
		return
	}
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.state = StateConnecting
	c.mu.Unlock()

	conn, resp, err := c.dialer.Dial(c.dialURL(token), nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		logger.Log.Error("realtime dial failed", "url", c.url, "error", err)
		c.mu.Lock()
		c.state = StateDisconnected
		c.mu.Unlock()
		c.armReconnect()
		return
	}

	c.mu.Lock()
	if c.conn != nil {
		c.conn.Close()
	}
	c.conn = conn
	c.state = StateConnected
	c.mu.Unlock()
	logger.Log.Info("realtime channel connected", "url", c.url)

	go c.readLoop(conn)
}

// dialURL appends the access token as the token query parameter; the
// upstream authenticates the handshake from it.
func (c *Channel) dialURL(token string) string {
	u, err := url.Parse(c.url)
	if err != nil {
		return c.url + "?token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

// readLoop drains the connection until it fails, then classifies the close.
func (c *Channel) readLoop(conn *websocket.Conn) {
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			c.handleClosed(conn, err)
			return
		}
		var n domain.Notification
		if jsonErr := json.Unmarshal(message, &n); jsonErr != nil {
			logger.Log.Warn("dropping malformed realtime message", "error", jsonErr)
			continue
		}
		if c.handler != nil {
			c.handler(n)
		}
	}
}

func (c *Channel) handleClosed(conn *websocket.Conn, err error) {
	c.mu.Lock()
	// A stale read loop from a replaced connection must not touch state.
	if c.conn != conn {
		c.mu.Unlock()
		return
	}
	wasClosing := c.state == StateClosing
	c.conn = nil
	c.state = StateDisconnected
	c.mu.Unlock()

	if wasClosing {
		logger.Log.Info("realtime channel closed")
		return
	}
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		logger.Log.Info("realtime channel closed by server", "error", err)
		return
	}
	logger.Log.Warn("realtime channel dropped", "error", err)
	c.armReconnect()
}

// armReconnect schedules a single reconnect attempt. A timer already armed,
// or a connection already live, wins.
func (c *Channel) armReconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reconnectTimer != nil || c.state == StateConnected || c.state == StateConnecting {
		return
	}
	c.reconnectTimer = time.AfterFunc(c.reconnectDelay, func() {
		c.mu.Lock()
		c.reconnectTimer = nil
		c.mu.Unlock()
		if c.token() == "" {
			logger.Log.Info("realtime reconnect cancelled: session ended")
			return
		}
		logger.Log.Info("realtime reconnecting")
		c.Connect()
	})
}

// Disconnect closes the connection with a normal close code and cancels any
// armed reconnect. Safe to call in any state.
func (c *Channel) Disconnect() {
	c.mu.Lock()
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
	conn := c.conn
	if conn != nil {
		c.state = StateClosing
	} else {
		c.state = StateDisconnected
	}
	c.mu.Unlock()

	if conn == nil {
		return
	}
	deadline := time.Now().Add(time.Second)
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
		logger.Log.Debug("close frame write failed", "error", err)
	}
	conn.Close()
}

func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
