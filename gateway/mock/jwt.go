package mock

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/freementors/sdk-go/core"
)

// Claims is the bearer token payload the simulated backend issues.
type Claims struct {
	UserID string    `json:"userId"`
	Email  string    `json:"email"`
	Role   core.Role `json:"role"`
	jwt.StandardClaims
}

// issueToken signs an HS256 bearer token for the user.
func issueToken(secret []byte, user *core.User, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(ttl).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// parseToken verifies the signature and expiry and returns the claims.
func parseToken(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, core.RemoteError(core.KindAuthorization, "Invalid token")
	}
	if !token.Valid {
		return nil, core.RemoteError(core.KindAuthorization, "Invalid token")
	}
	return claims, nil
}
