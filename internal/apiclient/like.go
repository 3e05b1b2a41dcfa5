package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// likeStatus fetches the caller's liked flag for one target.
func (c *Client) likeStatus(ctx context.Context, token, path string) (bool, error) {
	resp, err := c.do(ctx, "GET", path, token, nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, statusError(resp, "failed to get like status")
	}
	var result struct {
		Liked bool `json:"liked"`
	}
	if err := decode(resp, &result); err != nil {
		return false, err
	}
	return result.Liked, nil
}

// setLike adds or removes the (user, target) like edge.
func (c *Client) setLike(ctx context.Context, token, path string, like bool) error {
	method := "POST"
	if !like {
		method = "DELETE"
	}
	resp, err := c.do(ctx, method, path, token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return statusError(resp, "failed to toggle like")
	}
	return nil
}

func (c *Client) ThreadLikeStatus(ctx context.Context, token, threadId string) (bool, error) {
	return c.likeStatus(ctx, token, fmt.Sprintf("/api/threads/%s/like", url.PathEscape(threadId)))
}

func (c *Client) SetThreadLike(ctx context.Context, token, threadId string, like bool) error {
	return c.setLike(ctx, token, fmt.Sprintf("/api/threads/%s/like", url.PathEscape(threadId)), like)
}

func (c *Client) PostLikeStatus(ctx context.Context, token, postId string) (bool, error) {
	return c.likeStatus(ctx, token, fmt.Sprintf("/api/posts/%s/like", url.PathEscape(postId)))
}

func (c *Client) SetPostLike(ctx context.Context, token, postId string, like bool) error {
	return c.setLike(ctx, token, fmt.Sprintf("/api/posts/%s/like", url.PathEscape(postId)), like)
}
