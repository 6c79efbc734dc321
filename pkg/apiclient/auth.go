package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, in UserCreate) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/auth/register/", nil, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// IssueToken exchanges email and password for a bearer token. The backend
// implements the OAuth2 password grant, so credentials go over as form
// fields with the email in the username slot.
func (c *Client) IssueToken(ctx context.Context, email, password string) (*Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var token Token
	if err := c.doForm(ctx, http.MethodPost, "/auth/token/", form, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Me returns the profile of the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/me/", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe updates the authenticated user's profile.
func (c *Client) UpdateMe(ctx context.Context, in UserUpdate) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPatch, "/auth/me/", nil, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GoogleAuthURL returns the backend endpoint that starts the Google OAuth
// flow. The backend redirects the browser to Google from there.
func (c *Client) GoogleAuthURL() string {
	u := *c.baseURL
	u.Path = u.Path + "/auth/google/"
	return u.String()
}
