package locale

import (
	"net/http"
	"strings"
	"time"
)

// CookieName stores the visitor's language preference
const CookieName = "zungri-lang"

// Resolver computes the active locale for a request from a fixed supported
// set, with a strict precedence order: URL path segment, then cookie, then
// Accept-Language primary subtag, then the configured default.
type Resolver struct {
	defaultCode string
	supported   map[string]struct{}
	ordered     []string
}

func NewResolver(defaultCode string, supported []string) *Resolver {
	set := make(map[string]struct{}, len(supported))
	ordered := make([]string, 0, len(supported))
	for _, code := range supported {
		set[code] = struct{}{}
		ordered = append(ordered, code)
	}
	return &Resolver{defaultCode: defaultCode, supported: set, ordered: ordered}
}

func (rs *Resolver) Default() string {
	return rs.defaultCode
}

func (rs *Resolver) Supported() []string {
	return rs.ordered
}

func (rs *Resolver) IsSupported(code string) bool {
	_, ok := rs.supported[code]
	return ok
}

// Resolve returns the active locale and whether it was derived from the
// Accept-Language header. Only header-derived selections are persisted as
// a cookie by the caller; URL and cookie selections are left untouched so
// an explicit choice is never overwritten.
func (rs *Resolver) Resolve(r *http.Request) (string, bool) {
	if code, _ := rs.SplitPath(r.URL.Path); code != "" {
		return code, false
	}

	if cookie, err := r.Cookie(CookieName); err == nil && rs.IsSupported(cookie.Value) {
		return cookie.Value, false
	}

	if code := primarySubtag(r.Header.Get("Accept-Language")); rs.IsSupported(code) {
		return code, true
	}

	return rs.defaultCode, false
}

// SplitPath strips a leading supported-locale segment from a URL path:
// "/en/tickets" -> ("en", "/tickets"), "/tickets" -> ("", "/tickets").
// The remainder is always a rooted path.
func (rs *Resolver) SplitPath(path string) (code, rest string) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, remainder, _ := strings.Cut(trimmed, "/")
	if !rs.IsSupported(segment) {
		return "", path
	}
	return segment, "/" + remainder
}

// SetCookie persists a locale selection for subsequent requests
func SetCookie(w http.ResponseWriter, code string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    code,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// primarySubtag takes only the first comma-separated Accept-Language entry
// and only its primary subtag: "en-US,en;q=0.9" -> "en"
func primarySubtag(header string) string {
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	first = strings.TrimSpace(first)
	primary, _, _ := strings.Cut(first, "-")
	return strings.ToLower(primary)
}
