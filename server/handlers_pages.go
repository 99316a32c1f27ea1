package server

import (
	"fmt"
	"html/template"
	"net/http"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog/log"

	"github.com/gianpd/zungri-web/auth"
	"github.com/gianpd/zungri-web/internal/requestctx"
	"github.com/gianpd/zungri-web/museum"
)

const contentTypeHTML = "text/html; charset=utf-8"

// pageData is the common view model embedded by every page. It is built
// from the request context only; handlers never re-resolve locale or
// session themselves.
type pageData struct {
	AppName   string
	Locale    string
	Session   *auth.Session
	localizer *goi18n.Localizer
}

func (s *Server) pageData(r *http.Request) pageData {
	return pageData{
		AppName:   s.config.GetAppName(),
		Locale:    requestctx.LocaleFromContext(r.Context()),
		Session:   requestctx.SessionFromContext(r.Context()),
		localizer: requestctx.LocalizerFromContext(r.Context()),
	}
}

// T looks up a localized message; an unknown ID renders as itself so a
// missing translation is visible instead of silently blank
func (p pageData) T(id string) string {
	if p.localizer == nil {
		return id
	}
	msg, err := p.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

func (p pageData) LoggedIn() bool {
	return p.Session != nil
}

// Price renders an amount of euro cents as "€12,50"
func (p pageData) Price(cents int64) string {
	return fmt.Sprintf("€%d,%02d", cents/100, cents%100)
}

func (s *Server) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", contentTypeHTML)
	if err := tmpl.Execute(w, data); err != nil {
		log.Err(err).Str("template", tmpl.Name()).Msg("Failed to render template")
	}
}

// IndexHandler renders the home page with the current exhibits. The
// exhibits call fails soft: a degraded home page beats an error page.
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("home.html")
	if err != nil {
		panic("Failed to parse home template: " + err.Error())
	}

	type homePage struct {
		pageData
		Exhibits []museum.Exhibit
	}

	return func(w http.ResponseWriter, r *http.Request) {
		exhibits, err := s.museum.Exhibits(r.Context())
		if err != nil {
			log.Warn().Err(err).Msg("failed to load exhibits for home page")
		}
		s.render(w, tmpl, homePage{pageData: s.pageData(r), Exhibits: exhibits})
	}
}

// VisitHandler renders the opening hours and directions page
func (s *Server) VisitHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("visit.html")
	if err != nil {
		panic("Failed to parse visit template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, tmpl, struct{ pageData }{s.pageData(r)})
	}
}

// HistoryHandler renders the history of the cave settlement
func (s *Server) HistoryHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("history.html")
	if err != nil {
		panic("Failed to parse history template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, tmpl, struct{ pageData }{s.pageData(r)})
	}
}

// renderError renders the shared error page
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int) {
	tmpl, err := ParseTemplate("error.html")
	if err != nil {
		http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	if err := tmpl.Execute(w, struct{ pageData }{s.pageData(r)}); err != nil {
		log.Err(err).Msg("Failed to render error template")
	}
}
