package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gianpd/zungri-web/internal/requestctx"
	"github.com/gianpd/zungri-web/supabase"
)

// SessionMiddleware validates the provider session exactly once per request
// and attaches the result to the request context: the verified session (or
// nil) and the cached bearer token (or "") for downstream API calls.
// Handlers never re-validate; they read from context only.
//
// Side effects on the response are limited to cookie maintenance: a session
// refreshed during lookup is re-written, and a cookie set whose token failed
// verification is cleared since it can never verify again.
func (s *Server) SessionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := s.validator.Validate(r.Context(), r)

		token := ""
		switch {
		case result.Session != nil:
			token = result.Session.AccessToken
			if result.Refreshed {
				if err := supabase.WriteSessionCookies(w, s.provider.ProjectRef(), result.Raw); err != nil {
					log.Warn().Err(err).Msg("failed to rewrite refreshed session cookies")
				}
			}
		case result.HadRawSession:
			// The stored token will never verify again (e.g. after a
			// secret rotation); drop the cookie set.
			supabase.ClearSessionCookies(w, r, s.provider.ProjectRef())
		}

		ctx := requestctx.WithSession(r.Context(), result.Session)
		ctx = requestctx.WithBearerToken(ctx, token)
		next(w, r.WithContext(ctx))
	}
}
