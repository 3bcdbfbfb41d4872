package api

import "context"

// PostRequest is the body for creating a post. Reply and quote are
// optional and combinable.
type PostRequest struct {
	Text         string    `json:"text"`
	Reply        *ReplyRef `json:"reply,omitempty"`
	QuoteTweetID string    `json:"quote_tweet_id,omitempty"`
}

// ReplyRef points a post at the conversation it replies to.
type ReplyRef struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

// CreatedPost is the creation response payload.
type CreatedPost struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type createPostResponse struct {
	Data CreatedPost `json:"data"`
}

// CreatePost publishes a new post.
func (c *Client) CreatePost(ctx context.Context, req *PostRequest) (*CreatedPost, error) {
	var resp createPostResponse
	if err := c.post(ctx, "/tweets", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Deleted reports whether a delete call removed the resource.
type Deleted struct {
	Deleted bool `json:"deleted"`
}

type deleteResponse struct {
	Data Deleted `json:"data"`
}

// DeletePost removes a post owned by the authenticated user.
func (c *Client) DeletePost(ctx context.Context, id string) (*Deleted, error) {
	var resp deleteResponse
	if err := c.delete(ctx, "/tweets/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
