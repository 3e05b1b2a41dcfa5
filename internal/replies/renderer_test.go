package replies

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruangdiskusi/webclient/internal/domain"
)

func TestFlattenDepthAndBreadcrumb(t *testing.T) {
	page := NewPage(1, sampleTree(), domain.PaginationMeta{})
	rendered := Flatten(page)

	require.Len(t, rendered, 4)

	// pre-order, server order preserved
	ids := make([]string, len(rendered))
	for i, row := range rendered {
		ids[i] = row.Post.Id
	}
	assert.Equal(t, []string{"r1", "r2", "r3", "r4"}, ids)

	r1, r2, r3 := rendered[0], rendered[1], rendered[2]

	assert.Equal(t, 0, r1.Depth)
	assert.False(t, r1.Nested)
	assert.Nil(t, r1.ReplyingTo)

	// depth 1: nested but no breadcrumb
	assert.Equal(t, 1, r2.Depth)
	assert.True(t, r2.Nested)
	assert.Nil(t, r2.ReplyingTo)

	// depth 2: breadcrumb resolves to bob, r2's author
	assert.Equal(t, 2, r3.Depth)
	require.NotNil(t, r3.ReplyingTo)
	assert.Equal(t, "bob", r3.ReplyingTo.Author.Username)
	assert.Contains(t, r3.ReplyingTo.Snippet, "content of r2")
}

func TestFlattenIndentCap(t *testing.T) {
	// single chain c1 <- c2 <- ... <- c7
	chain := post("c7", "u7", ref("c6"))
	for i := 6; i >= 1; i-- {
		id := fmt.Sprintf("c%d", i)
		var parent *string
		if i > 1 {
			parent = ref(fmt.Sprintf("c%d", i-1))
		}
		chain = post(id, fmt.Sprintf("u%d", i), parent, chain)
	}

	page := NewPage(1, []*domain.Post{chain}, domain.PaginationMeta{})
	rendered := Flatten(page)
	require.Len(t, rendered, 7)

	last := rendered[6]
	assert.Equal(t, 6, last.Depth, "logical depth is preserved")
	assert.Equal(t, MaxIndentDepth, last.Indent, "visual indent is capped")
	require.NotNil(t, last.ReplyingTo, "breadcrumb survives beyond the visual cap")
	assert.Equal(t, "c6", last.ReplyingTo.Id)
}

func TestFlattenMissingParentOmitsBreadcrumb(t *testing.T) {
	// r3's parent points outside the page; must render without breadcrumb,
	// not fail
	roots := []*domain.Post{
		post("r1", "alice", nil,
			post("r2", "bob", ref("r1"),
				post("r3", "carol", ref("not-in-page")),
			),
		),
	}
	page := NewPage(1, roots, domain.PaginationMeta{})
	rendered := Flatten(page)

	require.Len(t, rendered, 3)
	assert.Nil(t, rendered[2].ReplyingTo)
}

func TestFlattenDeduplicatesIds(t *testing.T) {
	// historical data may contain duplicate ids; render keys must be unique
	roots := []*domain.Post{
		post("r1", "alice", nil),
		post("r1", "alice", nil),
		post("r2", "bob", nil),
	}
	page := NewPage(1, roots, domain.PaginationMeta{})
	rendered := Flatten(page)

	require.Len(t, rendered, 2)
	assert.Equal(t, "r1", rendered[0].Post.Id)
	assert.Equal(t, "r2", rendered[1].Post.Id)
}

func TestFlattenNilPage(t *testing.T) {
	assert.Nil(t, Flatten(nil))
}
