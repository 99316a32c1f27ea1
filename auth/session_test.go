package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gianpd/zungri-web/auth"
	"github.com/gianpd/zungri-web/supabase"
)

func TestReconcile(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	exp := now.Add(time.Hour)

	raw := &supabase.RawSession{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "bearer",
		// The provider's own expiry is deliberately different from the
		// claim; the claim must win
		ExpiresAt: now.Add(2 * time.Hour).Unix(),
		User: &supabase.RawUser{
			ID: "provider-user-id", // must NOT be used
			// created_at is the one field carried over from the raw user
			CreatedAt: "2024-06-01T10:00:00Z",
			Email:     "stale@example.com", // must NOT be used
		},
	}

	claims := &auth.Claims{
		Subject:      "claim-user-id",
		Audience:     "authenticated",
		Role:         "authenticated",
		Email:        "visitor@example.com",
		Phone:        "+390963000000",
		ExpiresAt:    exp,
		AppMetadata:  map[string]any{"provider": "email"},
		UserMetadata: map[string]any{"full_name": "A Visitor"},
	}

	session := auth.Reconcile(raw, claims, now)

	require.Equal(t, "access-token", session.AccessToken)
	require.Equal(t, "refresh-token", session.RefreshToken)
	require.Equal(t, auth.TokenTypeBearer, session.TokenType)
	require.Equal(t, exp.Unix(), session.ExpiresAt)
	require.Equal(t, int64(3600), session.ExpiresIn)

	require.Equal(t, "claim-user-id", session.User.ID)
	require.Equal(t, "authenticated", session.User.Aud)
	require.Equal(t, "visitor@example.com", session.User.Email)
	require.Equal(t, "+390963000000", session.User.Phone)
	require.Equal(t, "2024-06-01T10:00:00Z", session.User.CreatedAt)
	require.Equal(t, map[string]any{"provider": "email"}, session.User.AppMetadata)
	require.False(t, session.User.IsAnonymous)
}

func TestReconcileDefaults(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	raw := &supabase.RawSession{AccessToken: "access-token"}
	claims := &auth.Claims{Subject: "user-1", ExpiresAt: now.Add(time.Minute)}

	session := auth.Reconcile(raw, claims, now)

	require.Equal(t, auth.RoleAuthenticated, session.User.Role)
	require.False(t, session.User.IsAnonymous)
	require.Empty(t, session.User.CreatedAt)
}

func TestReconcileNegativeExpiresIn(t *testing.T) {
	// expires_in is informative, not authoritative: it can be negative
	// when the clock has already passed the expiry claim
	now := time.Unix(1_700_000_000, 0)

	raw := &supabase.RawSession{AccessToken: "access-token"}
	claims := &auth.Claims{Subject: "user-1", ExpiresAt: now.Add(-30 * time.Second)}

	session := auth.Reconcile(raw, claims, now)
	require.Equal(t, int64(-30), session.ExpiresIn)
}
