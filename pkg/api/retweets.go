package api

import "context"

// Reposted is the repost/unrepost response payload.
type Reposted struct {
	Retweeted bool `json:"retweeted"`
}

type repostResponse struct {
	Data Reposted `json:"data"`
}

// Repost shares a post to the authenticated user's timeline.
func (c *Client) Repost(ctx context.Context, tweetID string) (*Reposted, error) {
	id, err := c.myID(ctx)
	if err != nil {
		return nil, err
	}

	var resp repostResponse
	if err := c.post(ctx, "/users/"+id+"/retweets", &tweetIDBody{TweetID: tweetID}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UnRepost removes a repost.
func (c *Client) UnRepost(ctx context.Context, tweetID string) (*Reposted, error) {
	id, err := c.myID(ctx)
	if err != nil {
		return nil, err
	}

	var resp repostResponse
	if err := c.delete(ctx, "/users/"+id+"/retweets/"+tweetID, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
