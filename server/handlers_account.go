package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gianpd/zungri-web/internal/requestctx"
	"github.com/gianpd/zungri-web/museum"
)

// AccountHandler renders the account page for the verified session
// (GET /account; guarded)
func (s *Server) AccountHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("account.html")
	if err != nil {
		panic("Failed to parse account template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, tmpl, struct{ pageData }{s.pageData(r)})
	}
}

// OrdersHandler lists the visitor's past orders (GET /orders; guarded)
func (s *Server) OrdersHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("orders.html")
	if err != nil {
		panic("Failed to parse orders template: " + err.Error())
	}

	type ordersPage struct {
		pageData
		Orders []museum.Order
		Error  string
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := ordersPage{pageData: s.pageData(r)}
		orders, err := s.museum.Orders(r.Context(), requestctx.BearerTokenFromContext(r.Context()))
		if err != nil {
			log.Warn().Err(err).Msg("failed to load orders")
			data.Error = data.T("error.body")
		}
		data.Orders = orders
		s.render(w, tmpl, data)
	}
}
