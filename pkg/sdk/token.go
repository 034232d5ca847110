package sdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what can be read out of a bearer token without verifying it.
// The backend remains the authority on validity; this exists so the client
// can display expiry and skip doomed requests, nothing more.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// InspectToken decodes the claims of a JWT bearer token without signature
// verification. Tokens that are not JWTs yield an error; callers treat that
// as "opaque token, no local expiry knowledge".
func InspectToken(token string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, wrapError(KindValidation, err, "not a decodable token")
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}

// Expired reports whether the token carries an expiry in the past. Tokens
// without an exp claim never report expired.
func (t *TokenInfo) Expired() bool {
	return !t.ExpiresAt.IsZero() && time.Now().After(t.ExpiresAt)
}
