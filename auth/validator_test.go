package auth_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gianpd/zungri-web/auth"
	"github.com/gianpd/zungri-web/auth/authfakes"
	errs "github.com/gianpd/zungri-web/internal/errors"
	"github.com/gianpd/zungri-web/supabase"
)

func TestValidateNoSession(t *testing.T) {
	source := authfakes.NewFakeSessionSource()
	validator := auth.NewValidator(source, testSecret)

	result := validator.Validate(context.Background(), httptest.NewRequest("GET", "/", nil))

	require.Nil(t, result.Session)
	require.False(t, result.HadRawSession)
}

func TestValidateProviderErrorFailsSoft(t *testing.T) {
	source := authfakes.NewFakeSessionSource()
	source.Err = errs.ErrProviderUnavailable
	validator := auth.NewValidator(source, testSecret)

	result := validator.Validate(context.Background(), httptest.NewRequest("GET", "/", nil))

	require.Nil(t, result.Session)
	require.False(t, result.HadRawSession)
}

func TestValidateRejectsUnverifiedSession(t *testing.T) {
	// The provider says "session found" but the token was signed with a
	// different secret; local verification is the authority
	source := authfakes.NewFakeSessionSource()
	source.Session = &supabase.RawSession{
		AccessToken:  signToken(t, []byte("some-other-secret-entirely-000000000000"), validClaims(time.Now().Add(time.Hour))),
		RefreshToken: "refresh-token",
	}
	validator := auth.NewValidator(source, testSecret)

	result := validator.Validate(context.Background(), httptest.NewRequest("GET", "/", nil))

	require.Nil(t, result.Session)
	require.True(t, result.HadRawSession)
}

func TestValidateVerifiedSession(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	source := authfakes.NewFakeSessionSource()
	source.Session = &supabase.RawSession{
		AccessToken:  signToken(t, testSecret, validClaims(exp)),
		RefreshToken: "refresh-token",
		User:         &supabase.RawUser{CreatedAt: "2024-06-01T10:00:00Z"},
	}
	validator := auth.NewValidator(source, testSecret)

	result := validator.Validate(context.Background(), httptest.NewRequest("GET", "/", nil))

	require.NotNil(t, result.Session)
	require.True(t, result.HadRawSession)
	require.Equal(t, "user-1", result.Session.User.ID)
	require.Equal(t, source.Session.AccessToken, result.Session.AccessToken)
	require.Equal(t, exp.Unix(), result.Session.ExpiresAt)
	// within clock-skew tolerance of the computation instant
	require.InDelta(t, time.Until(exp).Seconds(), float64(result.Session.ExpiresIn), 5)
	require.Equal(t, "2024-06-01T10:00:00Z", result.Session.User.CreatedAt)
}

func TestValidateReportsRefresh(t *testing.T) {
	source := authfakes.NewFakeSessionSource()
	source.Session = &supabase.RawSession{
		AccessToken: signToken(t, testSecret, validClaims(time.Now().Add(time.Hour))),
	}
	source.Refreshed = true
	validator := auth.NewValidator(source, testSecret)

	result := validator.Validate(context.Background(), httptest.NewRequest("GET", "/", nil))

	require.NotNil(t, result.Session)
	require.True(t, result.Refreshed)
	require.Same(t, source.Session, result.Raw)
}
