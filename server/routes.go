package server

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteHome+"{$}", ChainMiddleware(s.IndexHandler(), s.HTMLMiddleWare()...))

	// Content pages
	s.RegisterRouteFunc("GET "+RouteVisit, ChainMiddleware(s.VisitHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("GET "+RouteHistory, ChainMiddleware(s.HistoryHandler(), s.HTMLMiddleWare()...))

	// Ticket booking
	s.RegisterRouteFunc("GET "+RouteTickets, ChainMiddleware(s.TicketsHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("POST "+RouteTickets, ChainMiddleware(s.BookTicketsHandler(), s.HTMLMiddleWare()...))

	// Shop & checkout
	s.RegisterRouteFunc("GET "+RouteShop, ChainMiddleware(s.ShopHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("GET "+RouteProduct, ChainMiddleware(s.ProductHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("GET "+RouteCheckout, ChainMiddleware(s.CheckoutHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("POST "+RouteCheckout, ChainMiddleware(s.PlaceOrderHandler(), s.HTMLMiddleWare()...))

	// Contact form
	s.RegisterRouteFunc("GET "+RouteContact, ChainMiddleware(s.ContactHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("POST "+RouteContact, ChainMiddleware(s.SubmitContactHandler(), s.HTMLMiddleWare()...))

	// Auth pages; access rules are enforced by the guard, not per-route
	s.RegisterRouteFunc("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("POST "+RouteLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("GET "+RouteSignup, ChainMiddleware(s.SignupPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("POST "+RouteSignup, ChainMiddleware(s.SignupSubmissionHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare()...))

	// Account pages
	s.RegisterRouteFunc("GET "+RouteAccount, ChainMiddleware(s.AccountHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("GET "+RouteOrders, ChainMiddleware(s.OrdersHandler(), s.HTMLMiddleWare()...))

	// Static assets
	s.RegisterRouteFunc("GET "+RouteStaticCSS, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteStaticImages, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.URL.Path, "/")
		if filePath == "" {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		if err := StreamFile(w, r, filePath); err != nil {
			log.Debug().Err(err).Str("file", filePath).Msg("static file not found")
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
	}
}
