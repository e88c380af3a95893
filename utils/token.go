package utils

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const AdminTokenTTL = time.Hour

// AdminClaims is the fixed claim set issued on a successful admin login.
type AdminClaims struct {
	IsAdmin bool   `json:"isAdmin"`
	Type    string `json:"type"`
	jwt.RegisteredClaims
}

func GenerateAdminToken(secret string, ttl time.Duration) (string, error) {
	claims := AdminClaims{
		IsAdmin: true,
		Type:    "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateAdminToken(tokenStr string, secret string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return token.Claims.(*AdminClaims), nil
}

// VerifyAdminKey compares the provided key against the configured one. When
// the configured value is a bcrypt hash the comparison goes through bcrypt,
// otherwise it falls back to a constant-time byte comparison.
func VerifyAdminKey(configured, provided string) bool {
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(provided)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(provided)) == 1
}
