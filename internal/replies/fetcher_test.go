package replies

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruangdiskusi/webclient/internal/api"
	"github.com/ruangdiskusi/webclient/internal/domain"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

type fakeLister struct {
	mu    sync.Mutex
	pages map[int]api.PostListResponse
	err   error

	// when set for a page, Load blocks until released
	block map[int]chan struct{}
	calls []int
}

func newFakeLister() *fakeLister {
	return &fakeLister{pages: make(map[int]api.PostListResponse), block: make(map[int]chan struct{})}
}

func (f *fakeLister) ListPosts(ctx context.Context, token, threadId string, page, limit int) (api.PostListResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, page)
	gate := f.block[page]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if f.err != nil {
		return api.PostListResponse{}, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pages[page], nil
}

func pageResponse(ids ...string) api.PostListResponse {
	posts := make([]*domain.Post, len(ids))
	for i, id := range ids {
		posts[i] = post(id, "user-"+id, nil)
	}
	return api.PostListResponse{
		Data: posts,
		Meta: domain.PaginationMeta{TotalPages: 2, TotalItems: len(ids) * 2},
	}
}

func TestLoadReplacesPageWholesale(t *testing.T) {
	lister := newFakeLister()
	lister.pages[1] = pageResponse("a1", "a2")
	lister.pages[2] = pageResponse("b1", "b2", "b3")

	fetcher := NewFetcher(lister, "tok", "t1", 10)

	page1, err := fetcher.Load(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, page1.Posts, 2)
	assert.Contains(t, page1.Parents, "a1")

	// navigating to page 2 fully replaces the tree and index
	page2, err := fetcher.Load(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, page2.Posts, 3)
	assert.Contains(t, page2.Parents, "b1")
	assert.NotContains(t, page2.Parents, "a1")
	assert.Nil(t, page2.Find("a1"))
	assert.Same(t, page2, fetcher.Current())
}

func TestLoadDiscardsStaleResponse(t *testing.T) {
	lister := newFakeLister()
	lister.pages[1] = pageResponse("a1")
	lister.pages[2] = pageResponse("b1")

	gate := make(chan struct{})
	lister.block[2] = gate

	fetcher := NewFetcher(lister, "tok", "t1", 10)

	// slow page-2 fetch issued first
	done := make(chan error, 1)
	go func() {
		_, err := fetcher.Load(context.Background(), 2)
		done <- err
	}()

	// wait for the page-2 call to be in flight
	require.Eventually(t, func() bool {
		lister.mu.Lock()
		defer lister.mu.Unlock()
		return len(lister.calls) == 1
	}, waitFor, tick)

	// user navigates to page 1; this fetch wins
	page1, err := fetcher.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page1.Number)

	// page-2 response resolves late and must be discarded
	close(gate)
	err = <-done
	assert.ErrorIs(t, err, ErrStale)

	current := fetcher.Current()
	require.NotNil(t, current)
	assert.Equal(t, 1, current.Number)
	assert.NotNil(t, current.Find("a1"))
	assert.Nil(t, current.Find("b1"))
}

func TestLoadError(t *testing.T) {
	lister := newFakeLister()
	lister.err = errors.New("backend unavailable")

	fetcher := NewFetcher(lister, "tok", "t1", 10)
	_, err := fetcher.Load(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, fetcher.Current())
}

func TestRefreshReloadsCurrentPage(t *testing.T) {
	lister := newFakeLister()
	lister.pages[1] = pageResponse("a1")
	lister.pages[2] = pageResponse("b1")

	fetcher := NewFetcher(lister, "tok", "t1", 10)

	_, err := fetcher.Load(context.Background(), 2)
	require.NoError(t, err)

	// posting a reply refreshes the current page, not page 1
	refreshed, err := fetcher.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed.Number)

	lister.mu.Lock()
	assert.Equal(t, []int{2, 2}, lister.calls)
	lister.mu.Unlock()
}
