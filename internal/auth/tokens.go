package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret = []byte(os.Getenv("JWT_SECRET"))

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"

	AccessTTL  = 30 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID   int
	Username string
}

// GenerateToken signs a single token of the given type for the user.
func GenerateToken(userID int, username, tokenType string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    userID,
		"username":   username,
		"token_type": tokenType,
		"exp":        time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(jwtSecret)
}

// GenerateTokenPair issues the access/refresh pair returned by the token endpoint.
func GenerateTokenPair(userID int, username string) (access string, refresh string, err error) {
	access, err = GenerateToken(userID, username, TypeAccess, AccessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = GenerateToken(userID, username, TypeRefresh, RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ParseToken verifies signature, expiry and token type, and returns the
// caller identity. Expired and malformed tokens fail the same way.
func ParseToken(tokenString, wantType string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	if tokenType, _ := claims["token_type"].(string); tokenType != wantType {
		return nil, fmt.Errorf("invalid token type")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid user_id claim")
	}
	username, _ := claims["username"].(string)

	return &Identity{UserID: int(userID), Username: username}, nil
}
