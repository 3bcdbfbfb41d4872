package api

// Tweet is a post as returned by the v2 endpoints.
type Tweet struct {
	ID             string         `json:"id"`
	Text           string         `json:"text"`
	AuthorID       string         `json:"author_id,omitempty"`
	ConversationID string         `json:"conversation_id,omitempty"`
	CreatedAt      string         `json:"created_at,omitempty"`
	PublicMetrics  map[string]int `json:"public_metrics,omitempty"`
}

// User is an account profile.
type User struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Username      string         `json:"username"`
	CreatedAt     string         `json:"created_at,omitempty"`
	Description   string         `json:"description,omitempty"`
	PublicMetrics map[string]int `json:"public_metrics,omitempty"`
}

// List is a curated list of accounts.
type List struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	MemberCount   int    `json:"member_count,omitempty"`
	FollowerCount int    `json:"follower_count,omitempty"`
	Private       bool   `json:"private,omitempty"`
}

// Meta carries pagination info on collection responses.
type Meta struct {
	ResultCount int    `json:"result_count,omitempty"`
	NextToken   string `json:"next_token,omitempty"`
	NewestID    string `json:"newest_id,omitempty"`
	OldestID    string `json:"oldest_id,omitempty"`
}

// Includes holds expanded objects referenced from the primary data.
type Includes struct {
	Users []User `json:"users,omitempty"`
}
