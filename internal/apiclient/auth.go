package apiclient

import (
	"context"
	"net/http"

	"github.com/ruangdiskusi/webclient/internal/api"
	internal_errors "github.com/ruangdiskusi/webclient/internal/errors"
)

func (c *Client) Login(ctx context.Context, data api.LoginRequest) (api.LoginResponse, error) {
	var response api.LoginResponse
	resp, err := c.doJSON(ctx, "POST", "/api/auth/login", "", data)
	if err != nil {
		return response, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return response, &internal_errors.ErrorWithStatusCode{
			Message: "email atau password salah", StatusCode: http.StatusUnauthorized,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return response, statusError(resp, "login failed")
	}
	if err := decode(resp, &response); err != nil {
		return response, err
	}
	return response, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	resp, err := c.do(ctx, "POST", "/api/auth/logout", token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "logout failed")
	}
	return nil
}
