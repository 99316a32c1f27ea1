package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gianpd/zungri-web/museum"
)

type contactPage struct {
	pageData
	Sent  bool
	Error string

	// Preserve form values on error
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactHandler renders the contact form (GET /contact)
func (s *Server) ContactHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("contact.html")
	if err != nil {
		panic("Failed to parse contact template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, tmpl, contactPage{pageData: s.pageData(r)})
	}
}

// SubmitContactHandler processes the contact form (POST /contact)
func (s *Server) SubmitContactHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("contact.html")
	if err != nil {
		panic("Failed to parse contact template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		msg := museum.ContactMessage{
			Name:    r.FormValue("name"),
			Email:   r.FormValue("email"),
			Subject: r.FormValue("subject"),
			Body:    r.FormValue("message"),
		}

		data := contactPage{
			pageData: s.pageData(r),
			Name:     msg.Name,
			Email:    msg.Email,
			Subject:  msg.Subject,
			Message:  msg.Body,
		}

		if msg.Email == "" || msg.Body == "" {
			data.Error = data.T("contact.error")
			s.render(w, tmpl, data)
			return
		}

		if err := s.museum.SubmitContact(r.Context(), msg); err != nil {
			log.Warn().Err(err).Msg("contact submission failed")
			data.Error = data.T("contact.error")
			s.render(w, tmpl, data)
			return
		}

		s.render(w, tmpl, contactPage{pageData: s.pageData(r), Sent: true})
	}
}
