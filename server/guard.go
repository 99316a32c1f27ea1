package server

import (
	"net/http"
	"strings"

	"github.com/gianpd/zungri-web/internal/requestctx"
)

type guardEffect int

const (
	// guardRequireSession redirects unauthenticated requests to the login page
	guardRequireSession guardEffect = iota
	// guardRequireAnonymous redirects authenticated requests away from
	// auth-only pages like login and signup
	guardRequireAnonymous
)

// guardRule classifies a route group by its first path segment.
// Rules are evaluated top-down, first match wins; adding a protected
// section is a one-line change.
type guardRule struct {
	segments []string
	effect   guardEffect
	redirect string
}

var guardRules = []guardRule{
	{segments: []string{"account", "orders", "checkout"}, effect: guardRequireSession, redirect: RouteLogin},
	{segments: []string{"login", "signup"}, effect: guardRequireAnonymous, redirect: RouteAccount},
}

// guardRedirect decides whether a request for path must be redirected.
// Matching is on the first path segment so nested routes inherit their
// group's rule.
func guardRedirect(path string, authenticated bool) (string, bool) {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if segment == "" {
		return "", false
	}

	for _, rule := range guardRules {
		for _, ruleSegment := range rule.segments {
			if segment != ruleSegment {
				continue
			}
			switch rule.effect {
			case guardRequireSession:
				if !authenticated {
					return rule.redirect, true
				}
			case guardRequireAnonymous:
				if authenticated {
					return rule.redirect, true
				}
			}
			return "", false
		}
	}
	return "", false
}

// GuardMiddleware enforces the route access rules against the session
// computed by SessionMiddleware. Violations resolve via a 303 redirect,
// never an error page.
func (s *Server) GuardMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requestctx.SessionFromContext(r.Context())
		if target, redirect := guardRedirect(r.URL.Path, session != nil); redirect {
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
