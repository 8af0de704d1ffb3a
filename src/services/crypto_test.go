package services

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces self-describing argon2id hash", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.HasPrefix(hash, "$argon2id$") {
			t.Errorf("expected argon2id prefix, got %s", hash)
		}
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		first, err := HashPassword("password123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := HashPassword("password123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if first == second {
			t.Error("expected distinct salts to yield distinct hashes")
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Run("accepts the correct password", func(t *testing.T) {
		hash, err := HashPassword("secret-password")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		match, err := VerifyPassword(hash, "secret-password")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !match {
			t.Error("expected password to verify")
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		hash, err := HashPassword("secret-password")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		match, err := VerifyPassword(hash, "wrong-password")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if match {
			t.Error("expected wrong password to be rejected")
		}
	})

	t.Run("rejects malformed hash", func(t *testing.T) {
		if _, err := VerifyPassword("not-a-hash", "password"); err == nil {
			t.Fatal("expected error for malformed hash")
		}
	})

	t.Run("rejects bcrypt-style hash", func(t *testing.T) {
		if _, err := VerifyPassword("$2a$10$abcdefghijklmnopqrstuv", "password"); err == nil {
			t.Fatal("expected error for non-argon2id hash")
		}
	})
}
