package replies

import (
	"context"
	"sync"
)

// LikeAPI is the per-target slice of the API client a toggle needs. Targets
// are threads or posts; the controller doesn't care which.
type LikeAPI interface {
	Status(ctx context.Context) (bool, error)
	SetLike(ctx context.Context, like bool) error
}

// LikeToggle is an optimistic like/unlike controller for one target. Toggle
// flips the local flag and count first, then reconciles with the server,
// rolling both back if the request fails.
type LikeToggle struct {
	api LikeAPI

	mu       sync.Mutex
	liked    bool
	count    int
	embedded bool // liked flag embedded in the page payload, the Init fallback
	loaded   bool
}

// NewLikeToggle seeds the controller from the page payload: the denormalized
// count and whatever liked flag was embedded (false if absent).
func NewLikeToggle(api LikeAPI, embeddedLiked bool, count int) *LikeToggle {
	return &LikeToggle{api: api, liked: embeddedLiked, embedded: embeddedLiked, count: count}
}

// Init lazily fetches the authoritative liked flag. On failure it falls back
// to the embedded flag; the toggle stays usable either way.
func (l *LikeToggle) Init(ctx context.Context) {
	l.mu.Lock()
	if l.loaded {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	liked, err := l.api.Status(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.liked = l.embedded
	} else {
		l.liked = liked
	}
	l.loaded = true
}

// Toggle applies the optimistic flip, issues the request, and restores the
// snapshot on failure so the UI never stays in the optimistic state.
func (l *LikeToggle) Toggle(ctx context.Context) error {
	l.mu.Lock()
	prevLiked, prevCount := l.liked, l.count
	l.liked = !prevLiked
	if l.liked {
		l.count = prevCount + 1
	} else {
		l.count = prevCount - 1
	}
	want := l.liked
	l.mu.Unlock()

	if err := l.api.SetLike(ctx, want); err != nil {
		l.mu.Lock()
		l.liked = prevLiked
		l.count = prevCount
		l.mu.Unlock()
		return err
	}
	return nil
}

func (l *LikeToggle) Liked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.liked
}

func (l *LikeToggle) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}
