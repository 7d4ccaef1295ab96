package utils

import (
	"testing"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := SignSessionToken("secret", 42, 1)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	userID, err := ParseSessionToken("secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 42 {
		t.Errorf("user id = %d, want 42", userID)
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := SignSessionToken("secret", 42, 1)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseSessionToken("other-secret", token); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := SignSessionToken("secret", 42, -1)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseSessionToken("secret", token); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	if _, err := ParseSessionToken("secret", "not-a-jwt"); err == nil {
		t.Error("malformed token was accepted")
	}
}
