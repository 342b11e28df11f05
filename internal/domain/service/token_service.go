package service

import "github.com/golang-jwt/jwt/v5"

// TokenService validates the bearer tokens issued by the identity provider.
// The lifecycle engine trusts the verified identity and never re-checks credentials.
type TokenService interface {
	// ValidateToken parses and verifies a signed JWT against the given secret.
	ValidateToken(tokenString, secret string) (*jwt.Token, error)
}
