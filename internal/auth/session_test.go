package auth

import (
	"context"
	"herbal/internal/entity/common"
	"testing"
	"time"
)

func TestSessionTokenLifecycle(t *testing.T) {
	mgr, err := NewManager("test-secret", "issuer", time.Minute*30)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}

	session := Session{UserID: 42, Role: common.RoleAdmin, Language: "hi", Theme: "dark"}
	token, issued, err := mgr.Issue(session)
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if issued.ID == "" {
		t.Fatal("expected token id to be set")
	}
	if issued.ExpiresAt.Time.Before(time.Now()) {
		t.Fatal("expected future expiry time")
	}

	claims, err := mgr.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if got := claims.Session(); got != session {
		t.Fatalf("expected session %+v, got %+v", session, got)
	}
	if !claims.Session().Authenticated() {
		t.Fatal("expected authenticated session")
	}
	if claims.ID != issued.ID {
		t.Fatalf("expected id %s, got %s", issued.ID, claims.ID)
	}
}

func TestAnonymousSessionCarriesPreferences(t *testing.T) {
	mgr, err := NewManager("test-secret", "", 0)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}
	token, _, err := mgr.Issue(Session{Language: "es", Theme: "light"})
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}
	claims, err := mgr.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if claims.Session().Authenticated() {
		t.Fatal("expected anonymous session")
	}
	if claims.Language != "es" {
		t.Fatalf("expected language es, got %q", claims.Language)
	}
}

func TestParseRejectsForeignAndExpiredTokens(t *testing.T) {
	mgr, _ := NewManager("secret-a", "issuer", time.Minute)
	other, _ := NewManager("secret-b", "issuer", time.Minute)

	token, _, err := other.Issue(Session{UserID: 1})
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}
	if _, err := mgr.Parse(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}

	past := time.Now().Add(-time.Hour)
	mgr.now = func() time.Time { return past }
	expired, _, err := mgr.Issue(Session{UserID: 1})
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}
	mgr.now = time.Now
	if _, err := mgr.Parse(expired); err == nil {
		t.Fatal("expected error for expired token")
	}

	if _, err := mgr.Parse("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager("   ", "", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestMemoryRevocationStore(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()

	if err := store.Revoke(ctx, "abc", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	revoked, err := store.IsRevoked(ctx, "abc")
	if err != nil || !revoked {
		t.Fatalf("expected abc revoked, got %v (err %v)", revoked, err)
	}

	if err := store.Revoke(ctx, "old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revoked, _ := store.IsRevoked(ctx, "old"); revoked {
		t.Fatal("expected already expired token not to be stored")
	}
	if revoked, _ := store.IsRevoked(ctx, "unknown"); revoked {
		t.Fatal("expected unknown id not revoked")
	}
}
