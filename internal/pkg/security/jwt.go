package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret     []byte
	jwtExpiration = time.Hour * 24
)

// InitJWT installs the signing secret and token lifetime from configuration.
func InitJWT(secret string, expireHours int) {
	jwtSecret = []byte(secret)
	if expireHours > 0 {
		jwtExpiration = time.Duration(expireHours) * time.Hour
	}
}

// GenerateToken signs a new JWT for the given principal.
func GenerateToken(subjectID uint64, kind string) (string, error) {
	expirationTime := time.Now().Add(jwtExpiration)

	claims := &UserClaims{
		SubjectID: subjectID,
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "ReelDine",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken verifies a token string and parses its claims.
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token invalid or expired")
	}

	return claims, nil
}

// ExtractSignature returns the signature segment of a token string.
func ExtractSignature(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", errors.New("malformed token")
	}
	return parts[2], nil
}

// TokenLifetime reports the configured token TTL (used for denylist expiry).
func TokenLifetime() time.Duration {
	return jwtExpiration
}
