package auth

import (
	"testing"
	"time"

	"hrms/internal/domain/core"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")
	now := time.Now()
	claims := Claims{SubjectID: "u1", Kind: core.KindHR, OrganizationID: "o1", SessionID: "s1"}

	token, err := GenerateToken(secret, claims, now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	parsed, err := ParseToken(secret, token, time.Now)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed.SubjectID != "u1" || parsed.Kind != core.KindHR || parsed.OrganizationID != "o1" || parsed.SessionID != "s1" {
		t.Fatalf("claims mismatch: %+v", parsed)
	}
}

func TestParseTokenRejectsIncompleteClaims(t *testing.T) {
	secret := []byte("test-secret")
	now := time.Now()
	token, err := GenerateToken(secret, Claims{SubjectID: "u1", Kind: "robot", OrganizationID: "o1", SessionID: "s1"}, now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if _, err := ParseToken(secret, token, time.Now); err == nil {
		t.Fatal("expected unknown kind to be rejected")
	}
}
