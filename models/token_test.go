package models

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret-that-is-at-least-32-characters-long"

// TestTokenRoundTrip verifies a signed token yields its session id.
func TestTokenRoundTrip(t *testing.T) {
	ts, err := NewTokenSigner(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenSigner() error: %v", err)
	}

	id := NewSessionID()
	token, err := ts.Sign(id)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("token %q is not a JWT", token)
	}

	got, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if got != id {
		t.Errorf("Verify() = %q, want %q", got, id)
	}
}

// TestTokenRejects tests tampered, foreign and malformed tokens.
func TestTokenRejects(t *testing.T) {
	ts, _ := NewTokenSigner(testSecret, time.Hour)
	other, _ := NewTokenSigner(strings.Repeat("x", 40), time.Hour)

	token, _ := ts.Sign("session-1")
	foreign, _ := other.Sign("session-1")

	// Flip the first character of the signature segment
	parts := strings.Split(token, ".")
	flipped := "A"
	if parts[2][0] == 'A' {
		flipped = "B"
	}
	tampered := parts[0] + "." + parts[1] + "." + flipped + parts[2][1:]

	tests := []struct {
		name  string
		token string
	}{
		{"tampered signature", tampered},
		{"other secret", foreign},
		{"garbage", "not-a-token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ts.Verify(tt.token); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

// TestNewTokenSignerShortSecret verifies short secrets are refused.
func TestNewTokenSignerShortSecret(t *testing.T) {
	if _, err := NewTokenSigner("short", time.Hour); err == nil {
		t.Error("expected an error for a short secret")
	}
}
