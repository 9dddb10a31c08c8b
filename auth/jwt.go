package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenExpiry is the fixed lifetime of a bearer token. There is no
// revocation list; a token stays valid until this window closes.
const AccessTokenExpiry = 30 * time.Minute

// ErrInvalidToken is returned for every verification failure. Callers never
// learn whether the signature, the expiry, or the claims were at fault.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenData is the identity a verified bearer token asserts.
type TokenData struct {
	UserID uint
	Email  string
}

func jwtSecret() []byte { return []byte(os.Getenv("JWT_SECRET")) }

// CreateAccessToken issues an HS256 token embedding the user id and email.
func CreateAccessToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(AccessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// VerifyToken decodes a bearer token and checks claim presence.
func VerifyToken(tokenString string) (*TokenData, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &TokenData{UserID: uint(userID), Email: email}, nil
}
