package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/gianpd/zungri-web/auth"
	"github.com/gianpd/zungri-web/internal/config"
	"github.com/gianpd/zungri-web/locale"
	"github.com/gianpd/zungri-web/museum"
	"github.com/gianpd/zungri-web/supabase"
)

type Server struct {
	env      string // Environment (e.g., "DEV", "production")
	mux      *http.ServeMux
	routes   []string
	pipeline http.HandlerFunc
	config   config.Config

	provider  *supabase.Client
	validator *auth.Validator
	museum    *museum.Client
	locales   *locale.Resolver
	bundle    *goi18n.Bundle
}

func New(cfg config.Config) (*Server, error) {
	provider := supabase.NewClient(
		cfg.GetSupabaseURL(),
		cfg.GetSupabaseAnonKey(),
		cfg.GetSupabaseProjectRef(),
		cfg.GetProviderTimeout(),
	)

	bundle, err := locale.NewBundle(cfg.GetDefaultLocale(), cfg.GetSupportedLocales())
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to load message catalogs: %w", err)
	}

	s := &Server{
		mux:       http.NewServeMux(),
		config:    cfg,
		provider:  provider,
		validator: auth.NewValidator(provider, cfg.GetSupabaseJWTSecret()),
		museum:    museum.NewClient(cfg.GetMuseumAPIURL(), cfg.GetMuseumAPIKey(), cfg.GetMuseumAPITimeout()),
		locales:   locale.NewResolver(cfg.GetDefaultLocale(), cfg.GetSupportedLocales()),
		bundle:    bundle,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	// Locale resolution and session validation run once per request, ahead
	// of routing, so every handler can read both from the request context.
	s.pipeline = ChainMiddleware(s.mux.ServeHTTP, s.LocaleMiddleware, s.SessionMiddleware, s.GuardMiddleware)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.pipeline(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
