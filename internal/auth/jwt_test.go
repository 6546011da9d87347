package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundtrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	id := uuid.New()

	token, err := issuer.Generate(id, "ops@example.com", "ADMIN")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.ID != id || claims.Email != "ops@example.com" || claims.Role != "ADMIN" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)
	token, err := issuer.Generate(uuid.New(), "ops@example.com", "EDITOR")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := issuer.Verify(token); err != ErrTokenExpired {
		t.Fatalf("Verify expired token: got %v, want ErrTokenExpired", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Generate(uuid.New(), "ops@example.com", "ADMIN")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewTokenIssuer("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatalf("Verify with wrong secret must fail")
	}
}

func TestTokenGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	if _, err := issuer.Verify("not-a-token"); err == nil {
		t.Fatalf("Verify garbage must fail")
	}
	if _, err := issuer.Verify(""); err == nil {
		t.Fatalf("Verify empty string must fail")
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("hunter22hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22hunter22" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "hunter22hunter22") {
		t.Fatalf("CheckPassword rejected the right password")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Fatalf("CheckPassword accepted the wrong password")
	}
}
