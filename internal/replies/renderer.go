package replies

import "github.com/ruangdiskusi/webclient/internal/domain"

// MaxIndentDepth caps visual indentation so deep chains don't overflow narrow
// viewports. Logical depth keeps growing past it and still drives the
// breadcrumb rule below.
const MaxIndentDepth = 4

// breadcrumbDepth is the depth from which a "replying to" breadcrumb is shown.
const breadcrumbDepth = 2

// RenderedPost is one row of the flattened render list.
type RenderedPost struct {
	Post   *domain.Post
	Depth  int  // logical depth, unbounded
	Indent int  // min(Depth, MaxIndentDepth), drives indentation
	Nested bool // Depth >= 1: indented, left-bordered

	// ReplyingTo is set at depth >= 2 when the parent is present in the
	// page's index; nil means render without a breadcrumb.
	ReplyingTo *ParentRef
}

// Flatten walks the page's tree pre-order and emits one depth-annotated
// record per node, preserving server order exactly. Ids are deduplicated
// defensively: the store-level guard already ensures uniqueness for
// well-formed data, but historical payloads may carry duplicates and
// duplicate render keys are a hard error downstream.
func Flatten(page *Page) []RenderedPost {
	if page == nil {
		return nil
	}

	out := make([]RenderedPost, 0, len(page.Parents))
	seen := make(map[string]struct{}, len(page.Parents))

	Walk(page.Posts, func(p *domain.Post, depth int) {
		if _, dup := seen[p.Id]; dup {
			return
		}
		seen[p.Id] = struct{}{}

		rendered := RenderedPost{
			Post:   p,
			Depth:  depth,
			Indent: min(depth, MaxIndentDepth),
			Nested: depth >= 1,
		}
		if depth >= breadcrumbDepth && p.ParentId != nil {
			if ref, ok := page.Parents[*p.ParentId]; ok {
				rendered.ReplyingTo = &ref
			}
		}
		out = append(out, rendered)
	})
	return out
}
