package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gianpd/zungri-web/internal/requestctx"
	"github.com/gianpd/zungri-web/supabase"
)

type authPage struct {
	pageData
	Error       string
	ConfirmHint bool
	Email       string // Preserve email on error
}

// LoginPageHandler displays the login page (GET /login; guarded, must be
// visited without a session)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("login.html")
	if err != nil {
		panic("Failed to parse login template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, tmpl, authPage{pageData: s.pageData(r)})
	}
}

// LoginSubmissionHandler forwards credentials to the identity provider
// (POST /login). On success the provider session is written to cookies and
// the visitor lands on their account page.
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("login.html")
	if err != nil {
		panic("Failed to parse login template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")

		data := authPage{pageData: s.pageData(r), Email: email}
		if email == "" || password == "" {
			data.Error = data.T("login.error")
			s.render(w, tmpl, data)
			return
		}

		session, err := s.provider.SignInWithPassword(r.Context(), email, password)
		if err != nil {
			log.Info().Err(err).Msg("login rejected by identity provider")
			data.Error = data.T("login.error")
			s.render(w, tmpl, data)
			return
		}

		if err := supabase.WriteSessionCookies(w, s.provider.ProjectRef(), session); err != nil {
			log.Err(err).Msg("failed to write session cookies after login")
			data.Error = data.T("error.body")
			s.render(w, tmpl, data)
			return
		}

		http.Redirect(w, r, RouteAccount, http.StatusSeeOther)
	}
}

// SignupPageHandler displays the signup page (GET /signup; guarded)
func (s *Server) SignupPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("signup.html")
	if err != nil {
		panic("Failed to parse signup template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, tmpl, authPage{pageData: s.pageData(r)})
	}
}

// SignupSubmissionHandler registers a new user with the identity provider
// (POST /signup). Depending on provider configuration the visitor is either
// signed in immediately or asked to confirm their email first.
func (s *Server) SignupSubmissionHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("signup.html")
	if err != nil {
		panic("Failed to parse signup template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")

		data := authPage{pageData: s.pageData(r), Email: email}
		if email == "" || password == "" {
			data.Error = data.T("signup.error")
			s.render(w, tmpl, data)
			return
		}

		session, err := s.provider.SignUp(r.Context(), email, password)
		if err != nil {
			log.Info().Err(err).Msg("signup rejected by identity provider")
			data.Error = data.T("signup.error")
			s.render(w, tmpl, data)
			return
		}

		if session == nil {
			// Email confirmation pending; no session yet
			data.ConfirmHint = true
			s.render(w, tmpl, data)
			return
		}

		if err := supabase.WriteSessionCookies(w, s.provider.ProjectRef(), session); err != nil {
			log.Err(err).Msg("failed to write session cookies after signup")
			data.Error = data.T("error.body")
			s.render(w, tmpl, data)
			return
		}

		http.Redirect(w, r, RouteAccount, http.StatusSeeOther)
	}
}

// LogoutHandler revokes the provider session and clears its cookies
// (POST /logout)
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := requestctx.BearerTokenFromContext(r.Context()); token != "" {
			if err := s.provider.SignOut(r.Context(), token); err != nil {
				// Revocation failure is not actionable; the cookies go either way
				log.Warn().Err(err).Msg("provider sign-out failed")
			}
		}
		supabase.ClearSessionCookies(w, r, s.provider.ProjectRef())
		http.Redirect(w, r, RouteHome, http.StatusSeeOther)
	}
}
