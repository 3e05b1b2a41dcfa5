// Package replies owns the in-memory state for one thread's reply view: the
// current page's tree as returned by the API, the flat parent lookup built
// from it, and the flattened render list derived from both.
package replies

import (
	"github.com/ruangdiskusi/webclient/internal/domain"
	"github.com/ruangdiskusi/webclient/internal/richtext"
)

const parentSnippetLen = 100

// ParentRef is a non-owning projection of a post, copied out of the tree when
// the index is built. It goes stale on refetch and is rebuilt wholesale.
type ParentRef struct {
	Id      string
	Author  domain.Author
	Snippet string
}

// ParentIndex maps post id to a summary of that post, for resolving
// "replying to @author" breadcrumbs without walking the tree again.
type ParentIndex map[string]ParentRef

// Page holds one fetched page of replies. Pages are independent windows;
// navigating replaces the whole Page, never merges.
type Page struct {
	Number     int
	Posts      []*domain.Post
	Parents    ParentIndex
	TotalPages int
	TotalItems int
}

// Walk visits every post reachable from roots in pre-order, depth-first.
func Walk(roots []*domain.Post, visit func(p *domain.Post, depth int)) {
	var rec func(p *domain.Post, depth int)
	rec = func(p *domain.Post, depth int) {
		visit(p, depth)
		for _, child := range p.Replies {
			rec(child, depth+1)
		}
	}
	for _, root := range roots {
		rec(root, 0)
	}
}

// BuildParentIndex traverses the tree and indexes every node, root and
// nested. Always rebuilt from scratch: a fetch replaces the active page's
// reply set wholesale, so partial invalidation is never attempted.
func BuildParentIndex(roots []*domain.Post) ParentIndex {
	index := make(ParentIndex)
	Walk(roots, func(p *domain.Post, _ int) {
		index[p.Id] = ParentRef{
			Id:      p.Id,
			Author:  p.Author,
			Snippet: richtext.Snippet(p.Content, parentSnippetLen),
		}
	})
	return index
}

// NewPage wraps a fetched page and builds its parent index.
func NewPage(number int, posts []*domain.Post, meta domain.PaginationMeta) *Page {
	return &Page{
		Number:     number,
		Posts:      posts,
		Parents:    BuildParentIndex(posts),
		TotalPages: meta.TotalPages,
		TotalItems: meta.TotalItems,
	}
}

// RemoveLocal removes the post with the given id from the page's tree. This
// is a display-only operation: children are not re-parented or spliced into
// the root, since children display is only ever derived from a fresh fetch.
// ParentIndex entries are left untouched until the next rebuild.
func (p *Page) RemoveLocal(id string) bool {
	var removed bool
	var prune func(list []*domain.Post) []*domain.Post
	prune = func(list []*domain.Post) []*domain.Post {
		out := list[:0]
		for _, post := range list {
			if post.Id == id {
				removed = true
				continue
			}
			post.Replies = prune(post.Replies)
			out = append(out, post)
		}
		return out
	}
	p.Posts = prune(p.Posts)
	return removed
}

// ReplaceLocal swaps the content of a single node in place. Tree shape and
// already-built parent entries stay as they are until the next fetch.
func (p *Page) ReplaceLocal(updated domain.Post) bool {
	var replaced bool
	Walk(p.Posts, func(post *domain.Post, _ int) {
		if post.Id == updated.Id {
			post.Content = updated.Content
			post.Attachments = updated.Attachments
			post.LikesCount = updated.LikesCount
			replaced = true
		}
	})
	return replaced
}

// Find returns the post with the given id, or nil.
func (p *Page) Find(id string) *domain.Post {
	var found *domain.Post
	Walk(p.Posts, func(post *domain.Post, _ int) {
		if post.Id == id && found == nil {
			found = post
		}
	})
	return found
}
