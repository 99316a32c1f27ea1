package auth

import (
	"time"

	"github.com/gianpd/zungri-web/supabase"
)

const (
	// TokenTypeBearer is the only token type the provider issues
	TokenTypeBearer = "bearer"

	// RoleAuthenticated is the default role for a verified session whose
	// token carries no explicit role claim
	RoleAuthenticated = "authenticated"
)

// User is the normalized identity of a verified session. All identity
// fields come from the verified token payload; only CreatedAt comes from
// the raw provider session, because the token has no such claim.
type User struct {
	ID           string
	Aud          string
	Role         string
	Email        string
	Phone        string
	CreatedAt    string
	AppMetadata  map[string]any
	UserMetadata map[string]any
	IsAnonymous  bool
}

// Session is a fully verified, request-scoped session. It is only ever
// constructed by Reconcile after the access token passed verification,
// and is discarded at the end of the request.
type Session struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	// ExpiresAt is the verified token's expiry claim (unix seconds),
	// not the provider's own field.
	ExpiresAt int64
	// ExpiresIn is exp - now at the moment of reconciliation. It is
	// informative, not authoritative: it can be negative transiently.
	ExpiresIn int64
	User      User
}

// Reconcile merges the untrusted raw provider session with the verified
// token claims into a normalized Session. Identity fields are taken from
// the claims; the opaque token strings and created_at are carried over
// from the raw session.
func Reconcile(raw *supabase.RawSession, claims *Claims, now time.Time) *Session {
	role := claims.Role
	if role == "" {
		role = RoleAuthenticated
	}

	createdAt := ""
	if raw.User != nil {
		createdAt = raw.User.CreatedAt
	}

	exp := claims.ExpiresAt.Unix()
	return &Session{
		AccessToken:  raw.AccessToken,
		RefreshToken: raw.RefreshToken,
		TokenType:    TokenTypeBearer,
		ExpiresAt:    exp,
		ExpiresIn:    exp - now.Unix(),
		User: User{
			ID:           claims.Subject,
			Aud:          claims.Audience,
			Role:         role,
			Email:        claims.Email,
			Phone:        claims.Phone,
			CreatedAt:    createdAt,
			AppMetadata:  claims.AppMetadata,
			UserMetadata: claims.UserMetadata,
			IsAnonymous:  claims.IsAnonymous,
		},
	}
}
