// league/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails signature, issuer or
// expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload: the account id, the admin flag and, for
// admins, the role.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"accountId"`
	Role      string `json:"role,omitempty"`
	Admin     bool   `json:"admin"`
}

// TokenIssuer issues and verifies HS256 tokens.
type TokenIssuer struct {
	secret []byte
	issuer string
	expiry time.Duration
}

// NewTokenIssuer creates a new TokenIssuer instance.
func NewTokenIssuer(secret, issuer string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		issuer: issuer,
		expiry: expiry,
	}
}

// Issue signs a token for the given account.
func (ti *TokenIssuer) Issue(accountID, role string, admin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ti.issuer,
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.expiry)),
		},
		AccountID: accountID,
		Role:      role,
		Admin:     admin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims.
func (ti *TokenIssuer) Verify(tokenStr string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ti.secret, nil
	}, jwt.WithIssuer(ti.issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
