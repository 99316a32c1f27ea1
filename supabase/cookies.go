package supabase

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	errs "github.com/gianpd/zungri-web/internal/errors"
)

const (
	// base64Prefix marks cookie values that are base64url-encoded JSON,
	// matching the provider's SSR cookie format.
	base64Prefix = "base64-"

	// cookieChunkSize is the maximum value length per cookie before the
	// session is split across sb-<ref>-auth-token.0, .1, ... chunks.
	cookieChunkSize = 3180

	// maxCookieChunks bounds chunk reassembly
	maxCookieChunks = 10
)

// CookieName returns the provider session cookie name for a project ref
func CookieName(projectRef string) string {
	return fmt.Sprintf("sb-%s-auth-token", projectRef)
}

// ReadSessionCookie reassembles and decodes the provider session cookie set.
// Returns (nil, nil) when no session cookie is present at all.
func ReadSessionCookie(r *http.Request, projectRef string) (*RawSession, error) {
	name := CookieName(projectRef)

	value := ""
	if c, err := r.Cookie(name); err == nil {
		value = c.Value
	} else {
		// Chunked variant: sb-<ref>-auth-token.0, .1, ...
		var sb strings.Builder
		for i := 0; i < maxCookieChunks; i++ {
			c, err := r.Cookie(fmt.Sprintf("%s.%d", name, i))
			if err != nil {
				break
			}
			sb.WriteString(c.Value)
		}
		value = sb.String()
	}

	if value == "" {
		return nil, nil
	}

	payload := []byte(value)
	if strings.HasPrefix(value, base64Prefix) {
		decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(value, base64Prefix))
		if err != nil {
			return nil, errs.Wrapf(errs.ErrNoSession, "undecodable session cookie: %v", err)
		}
		payload = decoded
	}

	var raw RawSession
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errs.Wrapf(errs.ErrNoSession, "unparseable session cookie: %v", err)
	}
	if raw.AccessToken == "" {
		return nil, errs.Wrapf(errs.ErrNoSession, "session cookie missing access token")
	}
	return &raw, nil
}

// WriteSessionCookies persists a raw session on the response, chunking the
// encoded value when it exceeds the per-cookie size limit.
func WriteSessionCookies(w http.ResponseWriter, projectRef string, session *RawSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return errs.Wrapf(err, "marshal session cookie")
	}
	value := base64Prefix + base64.RawURLEncoding.EncodeToString(payload)
	name := CookieName(projectRef)

	if len(value) <= cookieChunkSize {
		http.SetCookie(w, sessionCookie(name, value))
		return nil
	}

	for i := 0; len(value) > 0; i++ {
		chunk := value
		if len(chunk) > cookieChunkSize {
			chunk = value[:cookieChunkSize]
		}
		value = value[len(chunk):]
		http.SetCookie(w, sessionCookie(fmt.Sprintf("%s.%d", name, i), chunk))
	}
	return nil
}

// ClearSessionCookies expires the whole provider cookie set
func ClearSessionCookies(w http.ResponseWriter, r *http.Request, projectRef string) {
	name := CookieName(projectRef)
	expire := func(cookieName string) {
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	if _, err := r.Cookie(name); err == nil {
		expire(name)
	}
	for i := 0; i < maxCookieChunks; i++ {
		chunked := fmt.Sprintf("%s.%d", name, i)
		if _, err := r.Cookie(chunked); err != nil {
			break
		}
		expire(chunked)
	}
}

func sessionCookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   400 * 24 * 60 * 60, // provider default: 400 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
