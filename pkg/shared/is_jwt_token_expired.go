package shared

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// IsJWTTokenExpired returns true if the given access token is expired, not a
// parseable JWT, or carries no "exp" claim. The token signature is not
// verified; callers only use this to decide whether a cached token needs to
// be refreshed.
func IsJWTTokenExpired(accessToken string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return true
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return true
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return true
	}
	return exp-float64(time.Now().Unix()) <= 0
}
