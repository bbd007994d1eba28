package session

import (
	"context"
	"encoding/json"
	"testing"

	"carebook/models"
	"carebook/storage"
)

func newTestStore(t *testing.T) (*DefaultStore, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	return NewDefaultStore(context.Background(), kv), kv
}

func TestLoginDemoIdentity(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	identity, err := s.Login(ctx, "admin@demo.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if identity.Role != models.RoleAdmin || identity.Name != "Admin User" {
		t.Errorf("unexpected identity: %+v", identity)
	}

	current := s.Current()
	if current == nil || current.ID != identity.ID {
		t.Errorf("Current() = %+v, want %+v", current, identity)
	}

	// The persisted entry must be the credential-stripped projection.
	raw, err := s.KV.Get(ctx, CurrentUserKey)
	if err != nil {
		t.Fatalf("persisted current user missing: %v", err)
	}
	var saved map[string]any
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		t.Fatalf("unmarshal persisted current user: %v", err)
	}
	if _, ok := saved["passwordHash"]; ok {
		t.Error("persisted session identity carries a credential")
	}
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Login(ctx, "admin@demo.com", "password123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	before := s.Current()

	cases := []struct{ email, password string }{
		{"admin@demo.com", "wrong"},
		{"nobody@demo.com", "password123"},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := s.Login(ctx, tc.email, tc.password); err != ErrInvalidCredentials {
			t.Errorf("Login(%q, %q) err = %v, want ErrInvalidCredentials", tc.email, tc.password, err)
		}
	}

	after := s.Current()
	if after == nil || after.ID != before.ID {
		t.Errorf("active identity changed after failed login: %+v", after)
	}
}

func TestRegisterThenLogin(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	identity, err := s.Register(ctx, "Ann", "ann@x.com", "555-0001", "secret1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if identity.Role != models.RoleUser {
		t.Errorf("registered role = %q, want %q", identity.Role, models.RoleUser)
	}
	if identity.ID == "" {
		t.Error("registered identity has no id")
	}

	// Registration auto-logs-in.
	if current := s.Current(); current == nil || current.Email != "ann@x.com" {
		t.Errorf("Current() after Register = %+v", current)
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	got, err := s.Login(ctx, "ann@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login after Register: %v", err)
	}
	if got.ID != identity.ID {
		t.Errorf("login resolved id %q, want %q", got.ID, identity.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "Ann", "ann@x.com", "555-0001", "secret1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	registeredBefore, _ := s.loadRegistered(ctx)

	if _, err := s.Register(ctx, "Other Ann", "ann@x.com", "555-0002", "secret2"); err != ErrEmailTaken {
		t.Fatalf("duplicate Register err = %v, want ErrEmailTaken", err)
	}

	registeredAfter, _ := s.loadRegistered(ctx)
	if len(registeredAfter) != len(registeredBefore) {
		t.Errorf("registered set changed on rejected registration: %d -> %d", len(registeredBefore), len(registeredAfter))
	}
}

func TestRegisterDemoEmailRejected(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Register(context.Background(), "Shadow", "admin@demo.com", "", "secret1"); err != ErrEmailTaken {
		t.Fatalf("Register with demo email err = %v, want ErrEmailTaken", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Login(ctx, "user@demo.com", "password123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if s.Current() != nil {
		t.Error("Current() is not nil after Logout")
	}
	if _, err := s.KV.Get(ctx, CurrentUserKey); err != storage.ErrNotFound {
		t.Errorf("persisted current user still present after Logout: %v", err)
	}

	// Logging out twice is harmless.
	if err := s.Logout(ctx); err != nil {
		t.Errorf("second Logout: %v", err)
	}
}

func TestRestoreOnStart(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	first := NewDefaultStore(ctx, kv)
	want, err := first.Register(ctx, "Ann", "ann@x.com", "555-0001", "secret1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	// A fresh store over the same substrate restores the persisted entry
	// verbatim.
	second := NewDefaultStore(ctx, kv)
	got := second.Current()
	if got == nil || *got != *want {
		t.Errorf("restored identity = %+v, want %+v", got, want)
	}
}

func TestRestoreIgnoresMalformedEntry(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	if err := kv.Set(ctx, CurrentUserKey, "{not json"); err != nil {
		t.Fatal(err)
	}

	s := NewDefaultStore(ctx, kv)
	if s.Current() != nil {
		t.Error("malformed persisted session was not discarded")
	}
}

func TestLoginSurvivesMalformedRegisteredSet(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	if err := kv.Set(ctx, RegisteredUsersKey, "]["); err != nil {
		t.Fatal(err)
	}

	s := NewDefaultStore(ctx, kv)
	// Demo identities still resolve; the broken registered set reads as empty.
	if _, err := s.Login(ctx, "admin@demo.com", "password123"); err != nil {
		t.Errorf("demo login failed with malformed registered set: %v", err)
	}
	if _, err := s.Login(ctx, "ann@x.com", "secret1"); err != ErrInvalidCredentials {
		t.Errorf("login against malformed registered set err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLookup(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	demo, err := s.Lookup(ctx, "1")
	if err != nil || demo.Email != "admin@demo.com" {
		t.Errorf("Lookup demo = %+v, %v", demo, err)
	}

	registered, err := s.Register(ctx, "Ann", "ann@x.com", "555-0001", "secret1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, err := s.Lookup(ctx, registered.ID)
	if err != nil || got.Email != "ann@x.com" {
		t.Errorf("Lookup registered = %+v, %v", got, err)
	}

	if _, err := s.Lookup(ctx, "ghost"); err == nil {
		t.Error("Lookup of unknown id did not fail")
	}
}
