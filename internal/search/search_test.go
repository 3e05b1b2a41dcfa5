package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMeili answers the search endpoints for both indexes.
func fakeMeili(t *testing.T, threadHits, postHits []map[string]any, wantToken string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+wantToken, r.Header.Get("Authorization"))
		var hits []map[string]any
		switch {
		case strings.Contains(r.URL.Path, "/indexes/threads/"):
			hits = threadHits
		case strings.Contains(r.URL.Path, "/indexes/posts/"):
			hits = postHits
		default:
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"hits":               hits,
			"estimatedTotalHits": len(hits),
			"offset":             0,
			"limit":              20,
			"processingTimeMs":   1,
			"query":              "ujian",
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchDecodesBothIndexes(t *testing.T) {
	srv := fakeMeili(t,
		[]map[string]any{{"id": "t1", "slug": "ujian-matematika", "title": "Ujian Matematika", "author_name": "budi"}},
		[]map[string]any{{"id": "p1", "thread_id": "t1", "thread_slug": "ujian-matematika", "content": "semangat", "author_name": "sari"}},
		"tenant-tok")

	res := New(srv.URL).Search("tenant-tok", "ujian")

	require.Len(t, res.Threads, 1)
	assert.Equal(t, "ujian-matematika", res.Threads[0].Slug)
	require.Len(t, res.Posts, 1)
	assert.Equal(t, "sari", res.Posts[0].AuthorName)
	assert.False(t, res.Empty())
}

func TestSearchBlankQueryShortCircuits(t *testing.T) {
	srv := fakeMeili(t, nil, nil, "tenant-tok")
	res := New(srv.URL).Search("tenant-tok", "   ")
	assert.True(t, res.Empty())
	assert.Equal(t, "", res.Query)
}

func TestSearchWithoutTokenShortCircuits(t *testing.T) {
	srv := fakeMeili(t, nil, nil, "")
	res := New(srv.URL).Search("", "ujian")
	assert.True(t, res.Empty())
}

func TestSearchErrorDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	res := New(srv.URL).Search("bad-token", "ujian")
	assert.True(t, res.Empty())
	assert.Equal(t, "ujian", res.Query)
}
