package api

import (
	"context"
	"net/url"
	"strconv"
)

// SearchOptions tune a recent-search query.
type SearchOptions struct {
	MaxResults int
	NextToken  string
}

// SearchResult is a page of matching posts.
type SearchResult struct {
	Data     []Tweet   `json:"data"`
	Includes *Includes `json:"includes,omitempty"`
	Meta     *Meta     `json:"meta,omitempty"`
}

// SearchRecent queries posts from the last seven days.
func (c *Client) SearchRecent(ctx context.Context, query string, opts SearchOptions) (*SearchResult, error) {
	q := url.Values{
		"query":        {query},
		"tweet.fields": {defaultTweetFields},
		"user.fields":  {defaultUserFields},
		"expansions":   {defaultExpansions},
	}
	if opts.MaxResults > 0 {
		q.Set("max_results", strconv.Itoa(opts.MaxResults))
	}
	if opts.NextToken != "" {
		q.Set("next_token", opts.NextToken)
	}

	var resp SearchResult
	if err := c.get(ctx, "/tweets/search/recent", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
