package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/complaint-service/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, expiresAt, err := tm.GenerateToken("user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if until := time.Until(expiresAt); until < 59*time.Minute || until > 61*time.Minute {
		t.Fatalf("expiry not ~1h out: %v", until)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("Subject = %q, want %q", claims.Subject, "user-1")
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("Role = %q, want %q", claims.Role, domain.RoleAdmin)
	}
	if claims.ID == "" {
		t.Fatal("expected non-empty jti")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 60).GenerateToken("user-1", domain.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := NewTokenManager("secret-b", 60).ParseToken(token); err == nil {
		t.Fatal("expected error for token signed with different secret")
	}
}

func TestParseTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := tm.ParseToken(token); err == nil {
			t.Fatalf("expected error for malformed token %q", token)
		}
	}
}

func TestParseTokenExpired(t *testing.T) {
	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}
	token, _, err := tm.GenerateToken("user-1", domain.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := tm.ParseToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseTokenTamperedPayload(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	token, _, err := tm.GenerateToken("user-1", domain.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := tm.ParseToken(tampered); err == nil {
		t.Fatal("expected error for tampered token")
	}
}

func TestNewTokenManagerDefaultTTL(t *testing.T) {
	if got := NewTokenManager("s", 0).TTL(); got != time.Hour {
		t.Fatalf("TTL = %v, want %v", got, time.Hour)
	}
}
