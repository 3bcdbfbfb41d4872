package api

import "context"

type tweetIDBody struct {
	TweetID string `json:"tweet_id"`
}

// Liked is the like/unlike response payload.
type Liked struct {
	Liked bool `json:"liked"`
}

type likeResponse struct {
	Data Liked `json:"data"`
}

// Like marks a post as liked by the authenticated user.
func (c *Client) Like(ctx context.Context, tweetID string) (*Liked, error) {
	id, err := c.myID(ctx)
	if err != nil {
		return nil, err
	}

	var resp likeResponse
	if err := c.post(ctx, "/users/"+id+"/likes", &tweetIDBody{TweetID: tweetID}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Unlike removes a like.
func (c *Client) Unlike(ctx context.Context, tweetID string) (*Liked, error) {
	id, err := c.myID(ctx)
	if err != nil {
		return nil, err
	}

	var resp likeResponse
	if err := c.delete(ctx, "/users/"+id+"/likes/"+tweetID, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
