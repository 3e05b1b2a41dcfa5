package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ruangdiskusi/webclient/internal/domain"
)

func (c *Client) ListNotifications(ctx context.Context, token string, limit, offset int) ([]domain.Notification, error) {
	path := fmt.Sprintf("/api/notifications?limit=%d&offset=%d", limit, offset)
	resp, err := c.do(ctx, "GET", path, token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "failed to list notifications")
	}
	var response struct {
		Data []domain.Notification `json:"data"`
	}
	if err := decode(resp, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (c *Client) UnreadCount(ctx context.Context, token string) (int, error) {
	resp, err := c.do(ctx, "GET", "/api/notifications/unread-count", token, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, statusError(resp, "failed to get unread count")
	}
	var result struct {
		Count int `json:"count"`
	}
	if err := decode(resp, &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, token, notificationId string) error {
	path := fmt.Sprintf("/api/notifications/%s/read", url.PathEscape(notificationId))
	resp, err := c.do(ctx, "PUT", path, token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "failed to mark notification read")
	}
	return nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context, token string) error {
	resp, err := c.do(ctx, "PUT", "/api/notifications/read-all", token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "failed to mark all notifications read")
	}
	return nil
}
