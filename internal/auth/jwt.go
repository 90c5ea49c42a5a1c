package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// tokenExpiry extracts the exp claim without verifying the signature. The
// server is the authority on token validity; the client only needs expiry
// to schedule proactive refreshes.
func tokenExpiry(token string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token carries no expiry claim")
	}
	return claims.ExpiresAt.Time, nil
}
