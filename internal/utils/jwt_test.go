package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	userID := "user-123"

	tok, err := GenerateJWT(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	gotUserID, err := ParseJWT(tok, secret)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestParseJWT_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("u1", "secret", -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	_, err = ParseJWT(tok, "secret")
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("u2", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	_, err = ParseJWT(tok, "wrong-secret")
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParseJWT_TamperedSignature(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("u3", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	// Flip the first signature character.
	parts := strings.SplitN(tok, ".", 3)
	if len(parts) != 3 || parts[2] == "" {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	flip := byte('A')
	if parts[2][0] == 'A' {
		flip = 'B'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(flip) + parts[2][1:]
	if tampered == tok {
		t.Fatal("tampering produced identical token")
	}

	_, err = ParseJWT(tampered, "secret")
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestParseJWT_Malformed(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "not.a.jwt", strings.Repeat("x", 64)} {
		if _, err := ParseJWT(tok, "k"); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}
