package httpserver

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Francieverton/ACOLD-MKT/internal/models"
)

const accessCookieName = "accessToken"

const sessionTTL = 12 * time.Hour

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func createCookie(name, value, path string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func deleteCookie(name, path string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// mintSessionCookie signs an HS256 token for the logged-in user. The store
// session stays the source of truth; the cookie guards the seller routes.
func mintSessionCookie(secret []byte, user models.User) (*http.Cookie, error) {
	exp := time.Now().Add(sessionTTL)
	claims := sessionClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return nil, err
	}
	return createCookie(accessCookieName, signed, "/", exp), nil
}

func parseSessionCookie(secret []byte, value string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}
