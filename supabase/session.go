package supabase

import "time"

// RawSession is the session object the identity provider stores in its
// cookie set and returns from its token endpoints. It is untrusted: nothing
// in it may be used for identity purposes until the embedded access token
// has been verified locally (see the auth package).
type RawSession struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int64    `json:"expires_in"`
	ExpiresAt    int64    `json:"expires_at"`
	User         *RawUser `json:"user,omitempty"`
}

// RawUser is the provider's own view of the user. Identity claims are
// re-read from the verified token instead; only created_at is carried over,
// because the token payload has no such field.
type RawUser struct {
	ID           string         `json:"id"`
	Aud          string         `json:"aud"`
	Role         string         `json:"role"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	CreatedAt    string         `json:"created_at"`
	AppMetadata  map[string]any `json:"app_metadata,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	IsAnonymous  bool           `json:"is_anonymous"`
}

// Expired reports whether the provider considers the session's access token
// expired. A small margin avoids handing out a token that dies mid-request.
func (rs *RawSession) Expired(now time.Time) bool {
	if rs.ExpiresAt == 0 {
		return false
	}
	return rs.ExpiresAt <= now.Add(30*time.Second).Unix()
}
