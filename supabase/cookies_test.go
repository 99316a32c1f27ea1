package supabase_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/gianpd/zungri-web/internal/errors"
	"github.com/gianpd/zungri-web/supabase"
)

const testProjectRef = "testref"

func testRawSession(accessToken string) *supabase.RawSession {
	return &supabase.RawSession{
		AccessToken:  accessToken,
		RefreshToken: "refresh-token",
		TokenType:    "bearer",
		ExpiresIn:    3600,
		ExpiresAt:    1700003600,
		User: &supabase.RawUser{
			ID:    "user-1",
			Email: "visitor@example.com",
		},
	}
}

func requestWithCookies(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestCookieName(t *testing.T) {
	require.Equal(t, "sb-testref-auth-token", supabase.CookieName("testref"))
}

func TestReadSessionCookieAbsent(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	raw, err := supabase.ReadSessionCookie(r, testProjectRef)
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestWriteReadSessionCookieRoundtrip(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, supabase.WriteSessionCookies(w, testProjectRef, testRawSession("short-token")))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "sb-testref-auth-token", cookies[0].Name)
	require.True(t, strings.HasPrefix(cookies[0].Value, "base64-"))
	require.Equal(t, "/", cookies[0].Path)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	raw, err := supabase.ReadSessionCookie(requestWithCookies(t, w), testProjectRef)
	require.NoError(t, err)
	require.NotNil(t, raw)
	require.Equal(t, "short-token", raw.AccessToken)
	require.Equal(t, "refresh-token", raw.RefreshToken)
	require.Equal(t, "visitor@example.com", raw.User.Email)
}

func TestWriteSessionCookiesChunksLargeSessions(t *testing.T) {
	// A token long enough that the encoded cookie needs splitting.
	w := httptest.NewRecorder()
	big := testRawSession(strings.Repeat("x", 8000))
	require.NoError(t, supabase.WriteSessionCookies(w, testProjectRef, big))

	cookies := w.Result().Cookies()
	require.Greater(t, len(cookies), 1)
	require.Equal(t, "sb-testref-auth-token.0", cookies[0].Name)
	require.Equal(t, "sb-testref-auth-token.1", cookies[1].Name)

	raw, err := supabase.ReadSessionCookie(requestWithCookies(t, w), testProjectRef)
	require.NoError(t, err)
	require.NotNil(t, raw)
	require.Equal(t, big.AccessToken, raw.AccessToken)
}

func TestReadSessionCookieUnprefixedBase64(t *testing.T) {
	// Base64 without the "base64-" prefix is treated as a literal payload,
	// which is not JSON and must be rejected as a missing session.
	payload, err := json.Marshal(testRawSession("plain-token"))
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Cookie", supabase.CookieName(testProjectRef)+"="+base64.RawURLEncoding.EncodeToString(payload))

	raw, err := supabase.ReadSessionCookie(r, testProjectRef)
	require.ErrorIs(t, err, errs.ErrNoSession)
	require.Nil(t, raw)
}

func TestReadSessionCookieMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"garbage base64", "base64-!!!not-base64!!!"},
		{"non-json payload", "base64-" + base64.RawURLEncoding.EncodeToString([]byte("not json"))},
		{"missing access token", "base64-" + base64.RawURLEncoding.EncodeToString([]byte(`{"refresh_token":"r"}`))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Cookie", supabase.CookieName(testProjectRef)+"="+tc.value)

			raw, err := supabase.ReadSessionCookie(r, testProjectRef)
			require.ErrorIs(t, err, errs.ErrNoSession)
			require.Nil(t, raw)
		})
	}
}

func TestClearSessionCookies(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, supabase.WriteSessionCookies(w, testProjectRef, testRawSession(strings.Repeat("x", 8000))))
	r := requestWithCookies(t, w)

	cleared := httptest.NewRecorder()
	supabase.ClearSessionCookies(cleared, r, testProjectRef)

	cookies := cleared.Result().Cookies()
	require.NotEmpty(t, cookies)
	for _, c := range cookies {
		require.Equal(t, -1, c.MaxAge)
		require.Empty(t, c.Value)
	}
}
