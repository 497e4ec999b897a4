package utils

import "testing"

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := CheckPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("expected hash to verify, got: %v", err)
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, _ := HashPassword("same-password")
	second, _ := HashPassword("same-password")

	if first == second {
		t.Error("expected different hashes for the same password (bcrypt salts)")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, _ := HashPassword("right-password")

	if err := CheckPassword(hash, "wrong-password"); err == nil {
		t.Error("expected error for wrong password, got nil")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if err := CheckPassword("not-a-bcrypt-hash", "whatever"); err == nil {
		t.Error("expected error for malformed hash, got nil")
	}
}
