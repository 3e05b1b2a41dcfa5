package notification

import (
	"context"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/ruangdiskusi/webclient/internal/logger"
)

// Poller refreshes the unread counter on an interval. It backs up the
// realtime channel: a missed push only delays the badge until the next tick.
type Poller struct {
	store    *Store
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewPoller(store *Store, interval time.Duration) *Poller {
	return &Poller{store: store, interval: interval}
}

func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.refresh(ctx); err != nil && ctx.Err() == nil {
				logger.Log.Warn("unread count refresh failed", "error", err)
			}
		}
	}
}

func (p *Poller) refresh(ctx context.Context) error {
	return retry.Do(
		func() error { return p.store.FetchUnread(ctx) },
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.MaxDelay(10*time.Second),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logger.Log.Debug("retrying unread count fetch", "attempt", n, "error", err)
		}),
	)
}

// Stop cancels the loop and waits for it to exit.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}
