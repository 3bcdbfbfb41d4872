package api

import (
	"context"
	"net/url"
)

// Bookmarked is the bookmark/unbookmark response payload.
type Bookmarked struct {
	Bookmarked bool `json:"bookmarked"`
}

type bookmarkResponse struct {
	Data Bookmarked `json:"data"`
}

// AddBookmark bookmarks a post for the authenticated user.
func (c *Client) AddBookmark(ctx context.Context, tweetID string) (*Bookmarked, error) {
	id, err := c.myID(ctx)
	if err != nil {
		return nil, err
	}

	var resp bookmarkResponse
	if err := c.post(ctx, "/users/"+id+"/bookmarks", &tweetIDBody{TweetID: tweetID}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// RemoveBookmark deletes a bookmark.
func (c *Client) RemoveBookmark(ctx context.Context, tweetID string) (*Bookmarked, error) {
	id, err := c.myID(ctx)
	if err != nil {
		return nil, err
	}

	var resp bookmarkResponse
	if err := c.delete(ctx, "/users/"+id+"/bookmarks/"+tweetID, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// BookmarksPage is one page of the user's bookmarks.
type BookmarksPage struct {
	Data []Tweet `json:"data"`
	Meta *Meta   `json:"meta,omitempty"`
}

// Bookmarks lists the authenticated user's bookmarked posts.
func (c *Client) Bookmarks(ctx context.Context, nextToken string) (*BookmarksPage, error) {
	id, err := c.myID(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{"tweet.fields": {defaultTweetFields}}
	if nextToken != "" {
		q.Set("pagination_token", nextToken)
	}

	var resp BookmarksPage
	if err := c.get(ctx, "/users/"+id+"/bookmarks", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
