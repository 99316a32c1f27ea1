package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gianpd/zungri-web/supabase"
)

// SessionSource yields the provider's current raw session for a request.
// The bool reports whether the session was refreshed on the way in, so the
// caller can rewrite the provider cookie set on the response.
// *supabase.Client satisfies this.
type SessionSource interface {
	SessionFromRequest(ctx context.Context, r *http.Request) (*supabase.RawSession, bool, error)
}

// Validator turns request cookies into a verified Session, or nil.
//
// The provider's "session found" answer is never trusted on its own: the
// embedded access token must pass local signature verification against the
// server-held secret, so a stale session surviving a secret rotation is
// treated as absent.
type Validator struct {
	source SessionSource
	secret []byte
	now    func() time.Time
}

func NewValidator(source SessionSource, secret []byte) *Validator {
	return &Validator{source: source, secret: secret, now: time.Now}
}

// Result is the outcome of validating one request. Session is nil when the
// request is unauthenticated for any reason. HadRawSession distinguishes
// "no cookie at all" from "cookie present but rejected", so the caller can
// clear a cookie set that will never verify again.
type Result struct {
	Session       *Session
	Raw           *supabase.RawSession
	HadRawSession bool
	Refreshed     bool
}

// Validate runs the full validation pipeline once. Every failure mode
// degrades to an absent session; nothing here is request-fatal.
func (v *Validator) Validate(ctx context.Context, r *http.Request) Result {
	raw, refreshed, err := v.source.SessionFromRequest(ctx, r)
	if err != nil {
		log.Warn().Err(err).Msg("provider session lookup failed; treating session as absent")
		return Result{}
	}
	if raw == nil {
		return Result{}
	}

	claims, err := VerifyAccessToken(raw.AccessToken, v.secret)
	if err != nil {
		log.Info().Err(err).Msg("provider session token failed verification")
		return Result{Raw: raw, HadRawSession: true, Refreshed: refreshed}
	}

	return Result{
		Session:       Reconcile(raw, claims, v.now()),
		Raw:           raw,
		HadRawSession: true,
		Refreshed:     refreshed,
	}
}
