package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/models"
)

// TokenClaims is the payload of the fabricated session tokens. ClientID
// keys the holder's cart, wishlist and session state.
type TokenClaims struct {
	UserID   int    `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

func GenerateToken(secret []byte, expiry time.Duration, user models.User, clientID string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     user.Name,
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(secret []byte, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
