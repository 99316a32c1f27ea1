package auth

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	errs "github.com/gianpd/zungri-web/internal/errors"
	"github.com/gianpd/zungri-web/internal/utils"
)

// Claims is the decoded, signature-checked payload of a provider access
// token. It is the authoritative identity source: the provider's raw
// session is never trusted for identity fields.
type Claims struct {
	Subject      string
	Audience     string
	Role         string
	Email        string
	Phone        string
	SessionID    string
	ExpiresAt    time.Time
	IssuedAt     time.Time
	AppMetadata  map[string]any
	UserMetadata map[string]any
	IsAnonymous  bool
}

// VerifyAccessToken checks the compact token's HMAC signature and standard
// validity against the server-held secret and returns its claim set.
// The provider signs access tokens with HS256; any other algorithm is
// rejected outright.
func VerifyAccessToken(rawToken string, secret []byte) (*Claims, error) {
	if rawToken == "" {
		return nil, errs.ErrTokenMalformed
	}

	parser := jwtlib.NewParser(jwtlib.WithValidMethods([]string{"HS256"}))
	token, err := parser.Parse(rawToken, func(t *jwtlib.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwtlib.ErrTokenExpired):
			return nil, errs.Wrapf(errs.ErrTokenExpired, "%v", err)
		case errors.Is(err, jwtlib.ErrTokenMalformed):
			return nil, errs.Wrapf(errs.ErrTokenMalformed, "%v", err)
		default:
			return nil, errs.Wrapf(errs.ErrInvalidToken, "%v", err)
		}
	}
	if !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errs.Wrapf(errs.ErrInvalidToken, "unexpected claims type")
	}

	return claimsFromMap(mapClaims), nil
}

func claimsFromMap(mc jwtlib.MapClaims) *Claims {
	claims := &Claims{
		Subject:      utils.ClaimString(mc, "sub"),
		Role:         utils.ClaimString(mc, "role"),
		Email:        utils.ClaimString(mc, "email"),
		Phone:        utils.ClaimString(mc, "phone"),
		SessionID:    utils.ClaimString(mc, "session_id"),
		AppMetadata:  utils.ClaimMap(mc, "app_metadata"),
		UserMetadata: utils.ClaimMap(mc, "user_metadata"),
		IsAnonymous:  utils.ClaimBool(mc, "is_anonymous"),
	}

	// aud may be a single string or a list of audiences
	switch aud := mc["aud"].(type) {
	case string:
		claims.Audience = aud
	case []any:
		if auds := utils.ToStringSlice(aud); len(auds) > 0 {
			claims.Audience = auds[0]
		}
	}

	if exp := utils.ClaimUnix(mc, "exp"); exp != 0 {
		claims.ExpiresAt = time.Unix(exp, 0)
	}
	if iat := utils.ClaimUnix(mc, "iat"); iat != 0 {
		claims.IssuedAt = time.Unix(iat, 0)
	}

	return claims
}
