package helper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Scope discriminates the two standard token kinds. Single-purpose tokens
// (email verification, password reset) carry no scope claim at all.
type Scope string

const (
	ScopeAccess  Scope = "access_token"
	ScopeRefresh Scope = "refresh_token"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidScope = errors.New("invalid scope for token")
)

const (
	shortTTL = 15 * time.Minute
	longTTL  = 7 * 24 * time.Hour
)

type Auth struct {
	Secret string
}

func SetupAuth(secret string) Auth {
	return Auth{Secret: secret}
}

// Issue signs a token whose subject is the email. Long-lived tokens expire in
// 7 days, short-lived ones in 15 minutes. An empty scope omits the claim.
func (a Auth) Issue(email string, scope Scope, longLived bool) (string, error) {
	ttl := shortTTL
	if longLived {
		ttl = longTTL
	}
	return a.sign(email, scope, ttl)
}

func (a Auth) sign(email string, scope Scope, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if scope != "" {
		claims["scope"] = string(scope)
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(a.Secret))
}

// Decode verifies the signature and expiry and returns the subject email.
// When want is non-empty the scope claim must match exactly; when empty any
// or no scope is accepted.
func (a Auth) Decode(tokenStr string, want Scope) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	if want != "" {
		scope, _ := claims["scope"].(string)
		if scope != string(want) {
			return "", ErrInvalidScope
		}
	}

	sub, _ := claims["sub"].(string)
	return sub, nil
}
