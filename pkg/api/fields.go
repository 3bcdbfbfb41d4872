package api

// Default field lists requested on reads. The API returns bare ids
// unless fields are asked for explicitly.
const (
	defaultTweetFields = "id,text,author_id,created_at,public_metrics,conversation_id"
	defaultUserFields  = "id,name,username,created_at,description,public_metrics"
	defaultListFields  = "id,name,description,member_count,follower_count,private"
	defaultExpansions  = "author_id"
)
