package auth

import (
	"errors"
	"time"

	"github.com/SGRH/SGRH-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 2 * time.Hour

// ErrInvalidToken covers signature mismatch, malformed tokens and expiry.
var ErrInvalidToken = errors.New("token inválido o expirado")

// Claims is the decoded content of a bearer token.
type Claims struct {
	UserID int
	Role   models.Role
}

// IssueToken signs a token carrying the user id and role.
func IssueToken(secret string, userID int, role models.Role, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   string(role),
		"exp":    time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the claims.
// A token without a userId claim parses fine with a zero UserID; callers
// that need the id must treat that as a malformed payload.
func ParseToken(secret, tokenString string) (Claims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	out := Claims{}
	if id, ok := claims["userId"].(float64); ok {
		out.UserID = int(id)
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = models.Role(role)
	}
	return out, nil
}
