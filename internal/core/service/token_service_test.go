package service

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/registrydesk/object-service/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{ID: "u-123", Username: "alice", Role: domain.RoleAdmin}
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if identity.Subject != "u-123" {
		t.Fatalf("unexpected subject: %s", identity.Subject)
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
}

func TestTokenService_VerifyIsDeterministic(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService("secret", time.Hour).WithClock(func() time.Time { return at })

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	first, err1 := svc.Verify(token)
	second, err2 := svc.Verify(token)
	if err1 != nil || err2 != nil {
		t.Fatalf("verify errors: %v, %v", err1, err2)
	}
	if *first != *second {
		t.Fatalf("verify not deterministic: %+v vs %+v", first, second)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_TamperedPayload(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Swap the role claim inside the payload while keeping the original
	// signature: structurally valid, cryptographically not.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	claims["role"] = "admin"
	claims["sub"] = "u-999"
	forged, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	parts[1] = base64.RawURLEncoding.EncodeToString(forged)

	if _, err := svc.Verify(strings.Join(parts, ".")); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := time.Hour
	clock := issuedAt
	svc := NewTokenService("secret", ttl).WithClock(func() time.Time { return clock })

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	clock = issuedAt.Add(ttl - time.Second)
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("expected valid one second before expiry, got %v", err)
	}

	// Expiry is exclusive: the token dies the moment the clock reaches exp.
	clock = issuedAt.Add(ttl)
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at exactly exp, got %v", err)
	}

	clock = issuedAt.Add(ttl + time.Second)
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired after expiry, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := svc.Verify(tok); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestTokenService_RejectsForeignSigningMethod(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":  "u-123",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := foreign.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_UnknownRoleStillAuthenticates(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(&domain.User{ID: "u-7", Role: domain.Role("superuser")})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	// The guard, not the verifier, is responsible for denying unknown roles.
	if identity.Role.Satisfies(domain.RoleUser) {
		t.Fatalf("unknown role must not satisfy any requirement")
	}
}
