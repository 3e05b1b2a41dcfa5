package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ruangdiskusi/webclient/internal/api"
	"github.com/ruangdiskusi/webclient/internal/domain"
	internal_errors "github.com/ruangdiskusi/webclient/internal/errors"
)

// GetThreadBySlug fetches one thread. A miss is terminal: the caller renders
// a not-found state and does not retry.
func (c *Client) GetThreadBySlug(ctx context.Context, token, slug string) (domain.Thread, error) {
	var thread domain.Thread
	resp, err := c.do(ctx, "GET", "/api/threads/slug/"+url.PathEscape(slug), token, nil)
	if err != nil {
		return thread, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return thread, &internal_errors.ErrorWithStatusCode{
			Message: fmt.Sprintf("thread %q not found", slug), StatusCode: http.StatusNotFound,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return thread, statusError(resp, "failed to get thread")
	}
	if err := decode(resp, &thread); err != nil {
		return thread, err
	}
	return thread, nil
}

func (c *Client) ListThreads(ctx context.Context, token string, q api.ThreadQuery) (api.ThreadListResponse, error) {
	var response api.ThreadListResponse

	params := url.Values{}
	if q.CategoryId != "" {
		params.Set("category_id", q.CategoryId)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Audience != "" {
		params.Set("audience", q.Audience)
	}
	if q.SortBy != "" {
		params.Set("sort_by", q.SortBy)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	path := "/api/threads"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := c.do(ctx, "GET", path, token, nil)
	if err != nil {
		return response, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, statusError(resp, "failed to list threads")
	}
	if err := decode(resp, &response); err != nil {
		return response, err
	}
	return response, nil
}

func (c *Client) CreateThread(ctx context.Context, token string, data api.CreateThreadRequest) (domain.Thread, error) {
	var thread domain.Thread
	resp, err := c.doJSON(ctx, "POST", "/api/threads", token, data)
	if err != nil {
		return thread, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return thread, statusError(resp, "failed to create thread")
	}
	if err := decode(resp, &thread); err != nil {
		return thread, err
	}
	return thread, nil
}

func (c *Client) UpdateThread(ctx context.Context, token, threadId string, data api.UpdateThreadRequest) (domain.Thread, error) {
	var thread domain.Thread
	resp, err := c.doJSON(ctx, "PUT", "/api/threads/"+url.PathEscape(threadId), token, data)
	if err != nil {
		return thread, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return thread, statusError(resp, "failed to update thread")
	}
	if err := decode(resp, &thread); err != nil {
		return thread, err
	}
	return thread, nil
}

func (c *Client) DeleteThread(ctx context.Context, token, threadId string) error {
	resp, err := c.do(ctx, "DELETE", "/api/threads/"+url.PathEscape(threadId), token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "failed to delete thread")
	}
	return nil
}
