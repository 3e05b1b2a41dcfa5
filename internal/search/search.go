// Package search queries the Meilisearch instance the backend indexes threads
// and posts into. The client searches with the per-user tenant token issued at
// login, never the master key, so index rules filter what each role may see.
package search

import (
	"encoding/json"
	"strings"

	"github.com/meilisearch/meilisearch-go"

	"github.com/ruangdiskusi/webclient/internal/logger"
)

const (
	threadsIndex = "threads"
	postsIndex   = "posts"

	defaultLimit = 20
)

type ThreadHit struct {
	Id         string `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
	Category   string `json:"category"`
}

type PostHit struct {
	Id         string `json:"id"`
	ThreadId   string `json:"thread_id"`
	ThreadSlug string `json:"thread_slug"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
}

type Results struct {
	Query   string
	Threads []ThreadHit
	Posts   []PostHit
}

func (r Results) Empty() bool {
	return len(r.Threads) == 0 && len(r.Posts) == 0
}

type Service struct {
	host string
}

func New(host string) *Service {
	return &Service{host: host}
}

// Search runs the query against both indexes with the user's tenant token.
// Errors degrade to an empty result set: the search page renders its empty
// state rather than an error page when Meilisearch is unreachable.
func (s *Service) Search(tenantToken, query string) Results {
	query = strings.TrimSpace(query)
	res := Results{Query: query}
	if query == "" || tenantToken == "" {
		return res
	}

	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   s.host,
		APIKey: tenantToken,
	})

	if resp, err := client.Index(threadsIndex).Search(query, &meilisearch.SearchRequest{Limit: defaultLimit}); err != nil {
		logger.Log.Warn("thread search failed", "query", query, "error", err)
	} else {
		res.Threads = decodeHits[ThreadHit](resp.Hits)
	}

	if resp, err := client.Index(postsIndex).Search(query, &meilisearch.SearchRequest{Limit: defaultLimit}); err != nil {
		logger.Log.Warn("post search failed", "query", query, "error", err)
	} else {
		res.Posts = decodeHits[PostHit](resp.Hits)
	}
	return res
}

// decodeHits converts raw hits through JSON. A hit that fails to decode is
// skipped, not fatal.
func decodeHits[T any](hits []interface{}) []T {
	out := make([]T, 0, len(hits))
	for _, h := range hits {
		raw, err := json.Marshal(h)
		if err != nil {
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			logger.Log.Debug("skipping undecodable search hit", "error", err)
			continue
		}
		out = append(out, v)
	}
	return out
}
