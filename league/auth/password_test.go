// league/auth/password_test.go
package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "password1" {
		t.Fatal("hash must differ from the password")
	}

	if !VerifyPassword(hash, "password1") {
		t.Error("expected the correct password to verify")
	}
	if VerifyPassword(hash, "password2") {
		t.Error("expected a wrong password to fail")
	}
}

func TestHashPasswordDefaultCost(t *testing.T) {
	hash, err := HashPassword("password1", 0)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost extraction failed: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}
