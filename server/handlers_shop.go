package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	errs "github.com/gianpd/zungri-web/internal/errors"
	"github.com/gianpd/zungri-web/internal/requestctx"
	"github.com/gianpd/zungri-web/museum"
)

// ShopHandler renders the product list (GET /shop)
func (s *Server) ShopHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("shop.html")
	if err != nil {
		panic("Failed to parse shop template: " + err.Error())
	}

	type shopPage struct {
		pageData
		Products []museum.Product
		Error    string
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := shopPage{pageData: s.pageData(r)}
		products, err := s.museum.Products(r.Context())
		if err != nil {
			log.Warn().Err(err).Msg("failed to load products")
			data.Error = data.T("error.body")
		}
		data.Products = products
		s.render(w, tmpl, data)
	}
}

// ProductHandler renders a single product page (GET /shop/{slug})
func (s *Server) ProductHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("product.html")
	if err != nil {
		panic("Failed to parse product template: " + err.Error())
	}

	type productPage struct {
		pageData
		Product *museum.Product
	}

	return func(w http.ResponseWriter, r *http.Request) {
		product, err := s.museum.Product(r.Context(), r.PathValue("slug"))
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				s.renderError(w, r, http.StatusNotFound)
				return
			}
			log.Warn().Err(err).Str("slug", r.PathValue("slug")).Msg("failed to load product")
			s.renderError(w, r, http.StatusBadGateway)
			return
		}
		s.render(w, tmpl, productPage{pageData: s.pageData(r), Product: product})
	}
}

type checkoutPage struct {
	pageData
	Product *museum.Product
	Order   *museum.Order
	Error   string
}

// CheckoutHandler renders the checkout form for one product
// (GET /checkout/{slug}; guarded, requires a session)
func (s *Server) CheckoutHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("checkout.html")
	if err != nil {
		panic("Failed to parse checkout template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		product, err := s.museum.Product(r.Context(), r.PathValue("slug"))
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				s.renderError(w, r, http.StatusNotFound)
				return
			}
			s.renderError(w, r, http.StatusBadGateway)
			return
		}
		s.render(w, tmpl, checkoutPage{pageData: s.pageData(r), Product: product})
	}
}

// PlaceOrderHandler processes the checkout form (POST /checkout/{slug})
func (s *Server) PlaceOrderHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("checkout.html")
	if err != nil {
		panic("Failed to parse checkout template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		product, err := s.museum.Product(r.Context(), r.PathValue("slug"))
		if err != nil {
			s.renderError(w, r, http.StatusNotFound)
			return
		}

		quantity, err := strconv.Atoi(r.FormValue("quantity"))
		if err != nil || quantity < 1 {
			quantity = 1
		}

		data := checkoutPage{pageData: s.pageData(r), Product: product}

		// The guard guarantees a session here; the order is placed with the
		// visitor's own bearer token
		email := ""
		if session := requestctx.SessionFromContext(r.Context()); session != nil {
			email = session.User.Email
		}

		req := museum.OrderRequest{
			Reference: uuid.NewString(),
			Email:     email,
			Items:     []museum.OrderItem{{ProductID: product.ID, Quantity: quantity}},
		}

		order, err := s.museum.CreateOrder(r.Context(), requestctx.BearerTokenFromContext(r.Context()), req)
		if err != nil {
			log.Warn().Err(err).Msg("order creation failed")
			data.Error = data.T("checkout.error")
			s.render(w, tmpl, data)
			return
		}

		data.Order = order
		s.render(w, tmpl, data)
	}
}
