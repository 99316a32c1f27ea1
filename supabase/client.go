package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	errs "github.com/gianpd/zungri-web/internal/errors"
)

// Client talks to the hosted identity provider (GoTrue-style REST API).
// The anonymous key is public and identifies the project; it carries no
// user privileges on its own.
type Client struct {
	baseURL    string
	anonKey    string
	projectRef string
	httpClient *http.Client
}

func NewClient(baseURL, anonKey, projectRef string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		anonKey:    anonKey,
		projectRef: projectRef,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ProjectRef returns the project reference used in provider cookie names
func (c *Client) ProjectRef() string {
	return c.projectRef
}

// SessionFromRequest reads the provider session from the request's cookies.
// When the stored session is expired and carries a refresh token it is
// refreshed against the provider; the returned bool reports whether that
// happened, so the caller can rewrite the cookie set on the response.
//
// Absence of a session is (nil, false, nil); only provider/network trouble
// surfaces as an error.
func (c *Client) SessionFromRequest(ctx context.Context, r *http.Request) (*RawSession, bool, error) {
	raw, err := ReadSessionCookie(r, c.projectRef)
	if err != nil {
		// A cookie we cannot decode is indistinguishable from no session
		log.Debug().Err(err).Msg("discarding undecodable provider session cookie")
		return nil, false, nil
	}
	if raw == nil {
		return nil, false, nil
	}

	if !raw.Expired(time.Now()) || raw.RefreshToken == "" {
		return raw, false, nil
	}

	refreshed, err := c.RefreshSession(ctx, raw.RefreshToken)
	if err != nil {
		return nil, false, err
	}
	return refreshed, true, nil
}

// RefreshSession exchanges a refresh token for a new session
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*RawSession, error) {
	body := map[string]string{"refresh_token": refreshToken}
	session, err := c.tokenGrant(ctx, "refresh_token", body)
	if err != nil {
		return nil, errs.Wrapf(err, "refresh session")
	}
	return session, nil
}

// SignInWithPassword authenticates email/password credentials with the
// provider. Credentials are forwarded verbatim; they are never stored or
// verified locally.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*RawSession, error) {
	body := map[string]string{"email": email, "password": password}
	session, err := c.tokenGrant(ctx, "password", body)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// SignUp registers a new user with the provider. Depending on provider
// configuration the response may carry a session (autoconfirm) or only a
// user pending email confirmation, in which case the session is nil.
func (c *Client) SignUp(ctx context.Context, email, password string) (*RawSession, error) {
	payload := map[string]string{"email": email, "password": password}
	resp, err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var raw RawSession
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errs.Wrapf(errs.ErrProviderUnavailable, "decode signup response: %v", err)
	}
	if raw.AccessToken == "" {
		return nil, nil
	}
	return &raw, nil
}

// SignOut revokes the session's refresh token family at the provider.
// Cookie clearing is the caller's job.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	resp, err := c.do(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// The provider returns 204; a failed revocation is not actionable here
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) tokenGrant(ctx context.Context, grantType string, body map[string]string) (*RawSession, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type="+grantType, "", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var raw RawSession
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errs.Wrapf(errs.ErrProviderUnavailable, "decode token response: %v", err)
	}
	if raw.AccessToken == "" {
		return nil, errs.Wrapf(errs.ErrProviderRejected, "token response missing access token")
	}
	return &raw, nil
}

func (c *Client) do(ctx context.Context, method, path, bearer string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errs.Wrapf(err, "encode provider request")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errs.Wrapf(err, "build provider request")
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrapf(errs.ErrProviderUnavailable, "%s %s: %v", method, path, err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusUnauthorized:
		var pe providerError
		_ = json.NewDecoder(resp.Body).Decode(&pe)
		if pe.message() != "" {
			return errs.Wrapf(errs.ErrInvalidCredentials, "%s", pe.message())
		}
		return errs.ErrInvalidCredentials
	case resp.StatusCode == http.StatusUnprocessableEntity:
		var pe providerError
		_ = json.NewDecoder(resp.Body).Decode(&pe)
		return errs.Wrapf(errs.ErrProviderRejected, "%s", pe.message())
	default:
		return errs.Wrapf(errs.ErrProviderUnavailable, "provider returned %d", resp.StatusCode)
	}
}

// providerError matches the two error shapes the provider emits
type providerError struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

func (pe providerError) message() string {
	for _, m := range []string{pe.ErrorDescription, pe.Message, pe.Msg} {
		if m != "" {
			return m
		}
	}
	return ""
}
