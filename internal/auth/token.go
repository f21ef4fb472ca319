package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// Session is the caller's privilege state, carried in the signed
// cookie and passed explicitly to whatever needs it.
type Session struct {
	IsAdmin bool
}

type Claims struct {
	jwt.RegisteredClaims
	IsAdmin bool
}

func BuildAdminToken(secret []byte) (string, error) {

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{},

		IsAdmin: true,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseSession(tokenString string, secret []byte) (Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
	if err != nil {
		return Session{}, err
	}

	if !token.Valid {
		return Session{}, fmt.Errorf("token invalid")
	}

	return Session{IsAdmin: claims.IsAdmin}, nil
}
