package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	models "github.com/dubaitostars/starclient/internal"
)

// Login exchanges credentials for a bearer token. The endpoint follows
// the OAuth2 password-flow convention: form-encoded, email in the
// username field.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthToken, error) {
	form := url.Values{}
	form.Set("username", creds.Email)
	form.Set("password", creds.Password)

	var ans models.AuthToken
	if err := c.postForm(ctx, "/auth/login", form, &ans); err != nil {
		return ans, fmt.Errorf("logging in: %w", err)
	}
	return ans, nil
}

func (c *Client) Register(ctx context.Context, req models.UserCreate) (models.User, error) {
	var ans models.User
	if err := c.send(ctx, http.MethodPost, "/auth/register", nil, req, &ans); err != nil {
		return ans, fmt.Errorf("registering: %w", err)
	}
	return ans, nil
}

// CurrentUser is the "who am I" call used to validate a stored token.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var ans models.User
	if err := c.get(ctx, "/auth/me", nil, &ans); err != nil {
		return ans, fmt.Errorf("fetching current user: %w", err)
	}
	return ans, nil
}

func (c *Client) UpdatePreferences(ctx context.Context, preferences map[string]any) (models.User, error) {
	var ans models.User
	if err := c.send(ctx, http.MethodPut, "/auth/preferences", nil, preferences, &ans); err != nil {
		return ans, fmt.Errorf("updating preferences: %w", err)
	}
	return ans, nil
}
