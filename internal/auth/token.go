package auth

import (
	"errors"
	"fmt"
	"time"

	"postlink/internal/config"

	jwt "github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken covers every validation failure: bad signature, malformed
// token, elapsed expiry, or a missing identity claim. Callers should not
// distinguish between them.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// CreateAccessToken signs a token embedding the user id, expiring after the
// configured TTL. The signing algorithm must be an HMAC variant.
func CreateAccessToken(userID uint, cfg *config.Config) (string, error) {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return "", fmt.Errorf("unsupported signing algorithm: %s", cfg.Algorithm)
	}

	expTime := time.Now().Add(time.Duration(cfg.TokenExpireMinutes) * time.Minute)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expTime),
		},
	}

	return jwt.NewWithClaims(method, claims).SignedString([]byte(cfg.SecretKey))
}

// ParseAccessToken verifies signature and expiry and returns the embedded
// user id.
func ParseAccessToken(tokenString string, cfg *config.Config) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
