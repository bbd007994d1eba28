package session

import (
	"context"
	"sync"

	"carebook/models"
	"carebook/storage"
)

// Store owns the single active identity for the process and resolves
// credentials against the fixed demo set and the persisted registered set.
type Store interface {
	// Login resolves email+password, demo identities first, then the
	// registered set. On success the active identity becomes the
	// credential-stripped projection and is persisted.
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	// Register creates a new registered identity (role is always user) and
	// logs it in. Emails already held by a demo or registered identity are
	// rejected.
	Register(ctx context.Context, name, email, phone, password string) (*models.Identity, error)
	// Logout clears the active identity and its persisted entry.
	Logout(ctx context.Context) error
	// Current returns the active identity, or nil when logged out.
	Current() *models.Identity
	// Lookup resolves an identity by ID across the demo and registered sets.
	Lookup(ctx context.Context, id string) (*models.Identity, error)
}

// DefaultStore is the production implementation.
type DefaultStore struct {
	KV storage.KV

	mu      sync.RWMutex
	current *models.Identity
	demo    []demoAccount
}
