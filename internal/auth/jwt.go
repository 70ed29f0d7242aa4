package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is stamped into every session token.
const Issuer = "vapeshop"

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken signs a session id into an HS256 token that expires at
// expiresAt. The token is only a tamper-proof carrier: the session row it
// names is what keeps a login alive.
func GenerateToken(secret []byte, sid string, expiresAt time.Time) (string, error) {
	// 1. Create the claims. The subject is the session id, not the user.
	claims := jwt.RegisteredClaims{
		Subject:   sid,
		Issuer:    Issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	// 2. Sign it.
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken parses a session token and returns the session id it carries.
func ValidateToken(secret []byte, tokenString string) (string, error) {
	// 1. Parse, pinning the algorithm so an "alg: none" token is rejected.
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err // expired, malformed or forged
	}

	// 2. Pull out the session id.
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
