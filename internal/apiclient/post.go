package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ruangdiskusi/webclient/internal/api"
	"github.com/ruangdiskusi/webclient/internal/domain"
)

// ListPosts fetches exactly one page of tree-shaped replies for a thread.
// Root posts carry their descendants nested under Replies; the tree is
// preserved as returned, in server order.
func (c *Client) ListPosts(ctx context.Context, token, threadId string, page, limit int) (api.PostListResponse, error) {
	var response api.PostListResponse
	path := fmt.Sprintf("/api/threads/%s/posts?page=%d&limit=%d", url.PathEscape(threadId), page, limit)

	resp, err := c.do(ctx, "GET", path, token, nil)
	if err != nil {
		return response, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, statusError(resp, "failed to list posts")
	}
	if err := decode(resp, &response); err != nil {
		return response, err
	}
	return response, nil
}

func (c *Client) CreatePost(ctx context.Context, token, threadId string, data api.CreatePostRequest) (domain.Post, error) {
	var post domain.Post
	resp, err := c.doJSON(ctx, "POST", fmt.Sprintf("/api/threads/%s/posts", url.PathEscape(threadId)), token, data)
	if err != nil {
		return post, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return post, statusError(resp, "failed to create post")
	}
	if err := decode(resp, &post); err != nil {
		return post, err
	}
	return post, nil
}

func (c *Client) UpdatePost(ctx context.Context, token, postId string, data api.UpdatePostRequest) (domain.Post, error) {
	var post domain.Post
	resp, err := c.doJSON(ctx, "PUT", "/api/posts/"+url.PathEscape(postId), token, data)
	if err != nil {
		return post, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return post, statusError(resp, "failed to update post")
	}
	if err := decode(resp, &post); err != nil {
		return post, err
	}
	return post, nil
}

func (c *Client) DeletePost(ctx context.Context, token, postId string) error {
	resp, err := c.do(ctx, "DELETE", "/api/posts/"+url.PathEscape(postId), token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "failed to delete post")
	}
	return nil
}
