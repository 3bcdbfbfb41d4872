package token

import "time"

// Record is the persisted token state. It is always replaced wholesale on
// refresh or re-authorization; the access/refresh pair must never be
// updated independently.
type Record struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Scope        string    `json:"scope"`
	TokenType    string    `json:"token_type"`
}

// ExpiresWithin reports whether the record expires before now+buffer.
func (r *Record) ExpiresWithin(buffer time.Duration, now time.Time) bool {
	return r.ExpiresAt.Before(now.Add(buffer))
}
