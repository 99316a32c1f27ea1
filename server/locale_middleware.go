package server

import (
	"net/http"

	"github.com/gianpd/zungri-web/internal/requestctx"
	"github.com/gianpd/zungri-web/locale"
)

// LocaleMiddleware resolves the active locale once per request and attaches
// it, together with a message localizer, to the request context. When the
// locale came from the Accept-Language header it is persisted as a cookie so
// the next request short-circuits on the cookie instead of re-parsing the
// header; URL and cookie selections are never re-written.
//
// A leading locale segment is stripped from the URL path so the mux only
// ever sees canonical routes.
func (s *Server) LocaleMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, fromHeader := s.locales.Resolve(r)
		if fromHeader {
			locale.SetCookie(w, code, s.config.GetLocaleCookieMaxAge())
		}

		if _, rest := s.locales.SplitPath(r.URL.Path); rest != r.URL.Path {
			r.URL.Path = rest
		}

		ctx := requestctx.WithLocale(r.Context(), code)
		ctx = requestctx.WithLocalizer(ctx, locale.Localizer(s.bundle, code, s.locales.Default()))
		next(w, r.WithContext(ctx))
	}
}
