package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JWT secret key, loaded from ACCESS_TOKEN_SECRET at startup
var JwtKey []byte

// Claims represents the JWT claims. The token only asserts identity;
// the caller's role is looked up per request, never read from here.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// GenerateJWT signs a one-hour token for the given email
func GenerateJWT(email string) (string, error) {
	expirationTime := time.Now().Add(1 * time.Hour)
	claims := &Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
