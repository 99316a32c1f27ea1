package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/gianpd/zungri-web/auth"
	"github.com/gianpd/zungri-web/auth/authfakes"
	"github.com/gianpd/zungri-web/internal/config"
	"github.com/gianpd/zungri-web/internal/requestctx"
	"github.com/gianpd/zungri-web/locale"
	"github.com/gianpd/zungri-web/supabase"
)

var serverTestSecret = []byte("super-secret-jwt-token-with-at-least-32-characters")

func newTestServer(t *testing.T, source auth.SessionSource) *Server {
	t.Helper()
	bundle, err := locale.NewBundle("it", []string{"it", "en", "de"})
	require.NoError(t, err)
	return &Server{
		env:       "TEST",
		mux:       http.NewServeMux(),
		config:    config.New(),
		provider:  supabase.NewClient("http://localhost:54321", "anon", "testref", time.Second),
		validator: auth.NewValidator(source, serverTestSecret),
		museum:    nil,
		locales:   locale.NewResolver("it", []string{"it", "en", "de"}),
		bundle:    bundle,
	}
}

func signedRawSession(t *testing.T, secret []byte) *supabase.RawSession {
	t.Helper()
	exp := time.Now().Add(time.Hour)
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"sub":   "user-1",
		"aud":   "authenticated",
		"role":  "authenticated",
		"email": "visitor@example.com",
		"exp":   exp.Unix(),
		"iat":   exp.Add(-time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)

	return &supabase.RawSession{
		AccessToken:  token,
		RefreshToken: "refresh-token",
		TokenType:    "bearer",
		ExpiresAt:    exp.Unix(),
		User:         &supabase.RawUser{ID: "user-1", Email: "visitor@example.com"},
	}
}

func TestSessionMiddlewareAttachesVerifiedSession(t *testing.T) {
	source := authfakes.NewFakeSessionSource()
	source.Session = signedRawSession(t, serverTestSecret)
	s := newTestServer(t, source)

	var gotSession *auth.Session
	var gotToken string
	handler := s.SessionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		gotSession = requestctx.SessionFromContext(r.Context())
		gotToken = requestctx.BearerTokenFromContext(r.Context())
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, gotSession)
	require.Equal(t, "user-1", gotSession.User.ID)
	require.Equal(t, source.Session.AccessToken, gotToken)
	require.Equal(t, 1, source.CallCount(), "session must be validated exactly once per request")
	require.Empty(t, w.Result().Cookies(), "an unrefreshed session leaves cookies alone")
}

func TestSessionMiddlewareAnonymousRequest(t *testing.T) {
	source := authfakes.NewFakeSessionSource()
	s := newTestServer(t, source)

	handler := s.SessionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		require.Nil(t, requestctx.SessionFromContext(r.Context()))
		require.Empty(t, requestctx.BearerTokenFromContext(r.Context()))
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, 1, source.CallCount())
	require.Empty(t, w.Result().Cookies())
}

func TestSessionMiddlewareProviderFailureIsSoft(t *testing.T) {
	source := authfakes.NewFakeSessionSource()
	source.Err = supabaseDownError{}
	s := newTestServer(t, source)

	called := false
	handler := s.SessionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Nil(t, requestctx.SessionFromContext(r.Context()))
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, called, "provider trouble must not fail the page")
	require.Empty(t, w.Result().Cookies())
}

type supabaseDownError struct{}

func (supabaseDownError) Error() string { return "provider unreachable" }

func TestSessionMiddlewareClearsUnverifiableCookies(t *testing.T) {
	// A session signed with a different secret can never verify again, so
	// the middleware drops the stored cookie set.
	source := authfakes.NewFakeSessionSource()
	source.Session = signedRawSession(t, []byte("a-rotated-secret-that-no-longer-matches"))
	s := newTestServer(t, source)

	handler := s.SessionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		require.Nil(t, requestctx.SessionFromContext(r.Context()))
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: supabase.CookieName("testref"), Value: "base64-whatever"})
	w := httptest.NewRecorder()
	handler(w, r)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	for _, c := range cookies {
		require.Equal(t, -1, c.MaxAge)
	}
}

func TestSessionMiddlewareRewritesRefreshedSession(t *testing.T) {
	source := authfakes.NewFakeSessionSource()
	source.Session = signedRawSession(t, serverTestSecret)
	source.Refreshed = true
	s := newTestServer(t, source)

	handler := s.SessionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		require.NotNil(t, requestctx.SessionFromContext(r.Context()))
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "a refreshed session must be persisted")
	require.Equal(t, supabase.CookieName("testref"), cookies[0].Name)
	require.True(t, strings.HasPrefix(cookies[0].Value, "base64-"))
}
