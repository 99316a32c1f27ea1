package requestctx

import (
	"context"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/gianpd/zungri-web/auth"
)

// Request-scoped values are computed once by the middleware pipeline and
// read idempotently by handlers. Nothing here survives the request.

type sessionContextKey struct{}
type bearerTokenContextKey struct{}
type localeContextKey struct{}
type localizerContextKey struct{}

// WithSession stores the verified session (or nil for unauthenticated)
func WithSession(ctx context.Context, session *auth.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext returns the verified session, or nil
func SessionFromContext(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionContextKey{}).(*auth.Session)
	return session
}

// WithBearerToken caches the access token for downstream API calls
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenContextKey{}, token)
}

// BearerTokenFromContext returns the cached access token, or ""
func BearerTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(bearerTokenContextKey{}).(string)
	return token
}

// WithLocale stores the resolved locale code
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the resolved locale code, or ""
func LocaleFromContext(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale
}

// WithLocalizer stores the message localizer for the resolved locale
func WithLocalizer(ctx context.Context, localizer *goi18n.Localizer) context.Context {
	return context.WithValue(ctx, localizerContextKey{}, localizer)
}

// LocalizerFromContext returns the request's localizer, or nil
func LocalizerFromContext(ctx context.Context) *goi18n.Localizer {
	localizer, _ := ctx.Value(localizerContextKey{}).(*goi18n.Localizer)
	return localizer
}
