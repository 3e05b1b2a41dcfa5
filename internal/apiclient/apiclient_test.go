package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruangdiskusi/webclient/internal/api"
	"github.com/ruangdiskusi/webclient/internal/domain"
	internal_errors "github.com/ruangdiskusi/webclient/internal/errors"
)

func TestGetThreadBySlug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/threads/slug/diskusi-ujian":
			json.NewEncoder(w).Encode(domain.Thread{Id: "t1", Slug: "diskusi-ujian", Title: "Diskusi Ujian"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := New(server.URL)

	thread, err := client.GetThreadBySlug(context.Background(), "token123", "diskusi-ujian")
	require.NoError(t, err)
	assert.Equal(t, "t1", thread.Id)

	_, err = client.GetThreadBySlug(context.Background(), "token123", "missing")
	require.Error(t, err)
	var statusErr *internal_errors.ErrorWithStatusCode
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestListPostsKeepsTreeShape(t *testing.T) {
	parentId := "p1"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/threads/t1/posts", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(api.PostListResponse{
			Data: []*domain.Post{
				{Id: "p1", Replies: []*domain.Post{{Id: "p2", ParentId: &parentId}}},
			},
			Meta: domain.PaginationMeta{CurrentPage: 2, TotalPages: 3, TotalItems: 25},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	response, err := client.ListPosts(context.Background(), "tok", "t1", 2, 10)
	require.NoError(t, err)

	require.Len(t, response.Data, 1)
	require.Len(t, response.Data[0].Replies, 1)
	assert.Equal(t, "p2", response.Data[0].Replies[0].Id)
	assert.Equal(t, 3, response.Meta.TotalPages)
	assert.Equal(t, 25, response.Meta.TotalItems)
}

func TestStatusErrorPrefersAPIMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(api.ErrorResponse{Error: "akses ditolak"})
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.DeleteThread(context.Background(), "tok", "t1")
	require.Error(t, err)

	var statusErr *internal_errors.ErrorWithStatusCode
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Equal(t, "akses ditolak", statusErr.Message)
}

func TestSetLikeMethods(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL)

	require.NoError(t, client.SetPostLike(context.Background(), "tok", "p9", true))
	assert.Equal(t, "POST", gotMethod)
	assert.Equal(t, "/api/posts/p9/like", gotPath)

	require.NoError(t, client.SetPostLike(context.Background(), "tok", "p9", false))
	assert.Equal(t, "DELETE", gotMethod)
}
