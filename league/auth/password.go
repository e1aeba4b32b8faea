// league/auth/password.go
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword wraps bcrypt.GenerateFromPassword for account storage. A cost
// of 0 falls back to the bcrypt default.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword wraps bcrypt.CompareHashAndPassword for login checks.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
