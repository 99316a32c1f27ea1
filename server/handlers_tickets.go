package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gianpd/zungri-web/internal/requestctx"
	"github.com/gianpd/zungri-web/museum"
)

type ticketsPage struct {
	pageData
	TicketTypes []museum.TicketType
	Booking     *museum.Booking
	Error       string
}

// TicketsHandler renders the booking page (GET /tickets)
func (s *Server) TicketsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("tickets.html")
	if err != nil {
		panic("Failed to parse tickets template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := ticketsPage{pageData: s.pageData(r)}
		ticketTypes, err := s.museum.TicketTypes(r.Context())
		if err != nil {
			log.Warn().Err(err).Msg("failed to load ticket types")
			data.Error = data.T("tickets.error")
		}
		data.TicketTypes = ticketTypes
		s.render(w, tmpl, data)
	}
}

// BookTicketsHandler processes the booking form (POST /tickets)
func (s *Server) BookTicketsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("tickets.html")
	if err != nil {
		panic("Failed to parse tickets template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		quantity, err := strconv.Atoi(r.FormValue("quantity"))
		if err != nil || quantity < 1 {
			quantity = 1
		}

		req := museum.BookingRequest{
			Reference:    uuid.NewString(),
			TicketTypeID: r.FormValue("ticket_type_id"),
			VisitDate:    r.FormValue("visit_date"),
			Quantity:     quantity,
			Email:        r.FormValue("email"),
		}

		data := ticketsPage{pageData: s.pageData(r)}
		if req.TicketTypeID == "" || req.VisitDate == "" || req.Email == "" {
			data.Error = data.T("tickets.error")
			data.TicketTypes, _ = s.museum.TicketTypes(r.Context())
			s.render(w, tmpl, data)
			return
		}

		// An authenticated visitor's booking is tied to their account via
		// the request-scoped bearer token
		bearer := requestctx.BearerTokenFromContext(r.Context())
		booking, err := s.museum.CreateBooking(r.Context(), bearer, req)
		if err != nil {
			log.Warn().Err(err).Msg("booking creation failed")
			data.Error = data.T("tickets.error")
			data.TicketTypes, _ = s.museum.TicketTypes(r.Context())
			s.render(w, tmpl, data)
			return
		}

		data.Booking = booking
		s.render(w, tmpl, data)
	}
}
