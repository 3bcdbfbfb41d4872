package api

import (
	"context"
	"net/url"
)

type userResponse struct {
	Data User `json:"data"`
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	q := url.Values{"user.fields": {defaultUserFields}}

	var resp userResponse
	if err := c.get(ctx, "/users/me", q, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UserByUsername looks up a profile by handle (without the @).
func (c *Client) UserByUsername(ctx context.Context, username string) (*User, error) {
	q := url.Values{"user.fields": {defaultUserFields}}

	var resp userResponse
	if err := c.get(ctx, "/users/by/username/"+url.PathEscape(username), q, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// myID resolves and caches the authenticated user id for endpoints keyed
// by user (likes, reposts, bookmarks, owned lists).
func (c *Client) myID(ctx context.Context) (string, error) {
	if c.userID != "" {
		return c.userID, nil
	}

	me, err := c.Me(ctx)
	if err != nil {
		return "", err
	}
	c.userID = me.ID
	return c.userID, nil
}
