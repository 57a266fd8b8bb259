package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := hasher.Hash("correct-horse")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	t.Run("matching password verifies", func(t *testing.T) {
		if !hasher.Verify(hash, "correct-horse") {
			t.Error("expected Verify to report true for the original password")
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		if hasher.Verify(hash, "wrong-horse") {
			t.Error("expected Verify to report false for a different password")
		}
	})

	t.Run("garbage hash rejected", func(t *testing.T) {
		if hasher.Verify("not-a-bcrypt-hash", "correct-horse") {
			t.Error("expected Verify to report false for a malformed hash")
		}
	})
}

func TestBcryptHasher_ZeroCostUsesDefault(t *testing.T) {
	hasher := BcryptHasher{}

	hash, err := hasher.Hash("pw")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", cost, bcrypt.DefaultCost)
	}
}
