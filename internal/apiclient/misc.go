package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ruangdiskusi/webclient/internal/api"
	"github.com/ruangdiskusi/webclient/internal/domain"
)

// getJSON fetches path and decodes the 200 response into out.
func (c *Client) getJSON(ctx context.Context, token, path string, out any) error {
	resp, err := c.do(ctx, "GET", path, token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "request failed")
	}
	return decode(resp, out)
}

// === Categories ===

func (c *Client) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	var response api.CategoryListResponse
	if err := c.getJSON(ctx, token, "/api/categories", &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, data api.CreateCategoryRequest) error {
	resp, err := c.doJSON(ctx, "POST", "/api/categories", token, data)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return statusError(resp, "failed to create category")
	}
	return nil
}

func (c *Client) DeleteCategory(ctx context.Context, token, categoryId string) error {
	resp, err := c.do(ctx, "DELETE", "/api/categories/"+url.PathEscape(categoryId), token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "failed to delete category")
	}
	return nil
}

// === Admin users ===

func (c *Client) ListUsers(ctx context.Context, token string) ([]api.UserWithProfile, error) {
	var response api.UserListResponse
	if err := c.getJSON(ctx, token, "/api/admin/users", &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (c *Client) CreateUser(ctx context.Context, token string, data api.CreateUserRequest) error {
	resp, err := c.doJSON(ctx, "POST", "/api/admin/users", token, data)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return statusError(resp, "failed to create user")
	}
	return nil
}

func (c *Client) DeleteUser(ctx context.Context, token, userId string) error {
	resp, err := c.do(ctx, "DELETE", "/api/admin/users/"+url.PathEscape(userId), token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "failed to delete user")
	}
	return nil
}

// === Profiles ===

func (c *Client) GetPublicProfile(ctx context.Context, token, username string) (domain.PublicProfile, error) {
	var profile domain.PublicProfile
	err := c.getJSON(ctx, token, "/api/users/"+url.PathEscape(username), &profile)
	return profile, err
}

func (c *Client) GetMyProfile(ctx context.Context, token string) (api.UserWithProfile, error) {
	var result api.UserWithProfile
	err := c.getJSON(ctx, token, "/api/profile", &result)
	return result, err
}

func (c *Client) UpdateProfile(ctx context.Context, token string, data api.UpdateProfileRequest) error {
	resp, err := c.doJSON(ctx, "PUT", "/api/profile", token, data)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "failed to update profile")
	}
	return nil
}

// === Menfess ===

func (c *Client) ListMenfess(ctx context.Context, token string, page, limit int) (api.MenfessListResponse, error) {
	var response api.MenfessListResponse
	path := "/api/menfess"
	if page > 0 {
		path = fmt.Sprintf("%s?page=%d&limit=%d", path, page, limit)
	}
	err := c.getJSON(ctx, token, path, &response)
	return response, err
}

func (c *Client) CreateMenfess(ctx context.Context, token string, data api.CreateMenfessRequest) error {
	resp, err := c.doJSON(ctx, "POST", "/api/menfess", token, data)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return statusError(resp, "failed to create menfess")
	}
	return nil
}

// === Gamification ===

func (c *Client) Leaderboard(ctx context.Context, token string) ([]domain.LeaderboardEntry, error) {
	var response api.LeaderboardResponse
	if err := c.getJSON(ctx, token, "/api/gamification/leaderboard", &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (c *Client) MyGamificationStatus(ctx context.Context, token string) (domain.GamificationStatus, error) {
	var status domain.GamificationStatus
	err := c.getJSON(ctx, token, "/api/gamification/me", &status)
	return status, err
}
