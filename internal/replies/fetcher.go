package replies

import (
	"context"
	"errors"
	"sync"

	"github.com/ruangdiskusi/webclient/internal/api"
)

// ErrStale marks a fetch whose result arrived after a newer fetch was issued
// for the same thread view. The response is discarded, never applied.
var ErrStale = errors.New("stale page response discarded")

// PostLister is the slice of the API client the fetcher needs.
type PostLister interface {
	ListPosts(ctx context.Context, token, threadId string, page, limit int) (api.PostListResponse, error)
}

// Fetcher loads one page of replies at a time for a single thread. Each load
// replaces the held page and its parent index wholesale. In-flight loads are
// tagged with a generation; a response whose generation is no longer current
// is dropped so a slow page-2 fetch can never overwrite a later page-1 fetch.
type Fetcher struct {
	client   PostLister
	token    string
	threadId string
	limit    int

	mu      sync.Mutex
	gen     uint64
	page    *Page
	loading bool
}

func NewFetcher(client PostLister, token, threadId string, limit int) *Fetcher {
	return &Fetcher{client: client, token: token, threadId: threadId, limit: limit}
}

// Load fetches the given page and, if no newer load started meanwhile, makes
// it current. Returns ErrStale for superseded responses.
func (f *Fetcher) Load(ctx context.Context, pageNum int) (*Page, error) {
	if pageNum < 1 {
		pageNum = 1
	}

	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.loading = true
	f.mu.Unlock()

	response, err := f.client.ListPosts(ctx, f.token, f.threadId, pageNum, f.limit)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		return nil, ErrStale
	}
	f.loading = false
	if err != nil {
		return nil, err
	}

	f.page = NewPage(pageNum, response.Data, response.Meta)
	return f.page, nil
}

// Refresh refetches the current page, used after posting a reply so the tree
// and index stay consistent with server-assigned ordering and ids.
func (f *Fetcher) Refresh(ctx context.Context) (*Page, error) {
	f.mu.Lock()
	pageNum := 1
	if f.page != nil {
		pageNum = f.page.Number
	}
	f.mu.Unlock()
	return f.Load(ctx, pageNum)
}

// Current returns the page most recently made current, or nil.
func (f *Fetcher) Current() *Page {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

// Loading reports whether a load is in flight and not yet superseded.
func (f *Fetcher) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}
