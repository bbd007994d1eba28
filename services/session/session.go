package session

import (
	"context"
	"encoding/json"
	"fmt"

	"carebook/models"
	"carebook/storage"
	"carebook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Storage keys owned by the session store.
const (
	CurrentUserKey     = "currentUser"
	RegisteredUsersKey = "registeredUsers"
)

// NewDefaultStore builds the store and restores a persisted active identity
// if one exists. The persisted entry is loaded verbatim, without
// re-validation against the registered set.
func NewDefaultStore(ctx context.Context, kv storage.KV) *DefaultStore {
	s := &DefaultStore{
		KV:   kv,
		demo: demoAccounts(),
	}
	raw, err := kv.Get(ctx, CurrentUserKey)
	if err == nil {
		var saved models.Identity
		if jsonErr := json.Unmarshal([]byte(raw), &saved); jsonErr == nil {
			s.current = &saved
		}
		// Unparseable entries are treated as absent.
	}
	return s
}

func (s *DefaultStore) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	// Fixed demo identities take precedence over registered ones.
	for _, acct := range s.demo {
		if acct.identity.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return s.activate(ctx, acct.identity)
	}

	registered, err := s.loadRegistered(ctx)
	if err != nil {
		utils.GetLogger().Error("Login: failed to load registered identities", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	for _, rec := range registered {
		if rec.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return s.activate(ctx, rec.Projection())
	}
	return nil, ErrInvalidCredentials
}

func (s *DefaultStore) Register(ctx context.Context, name, email, phone, password string) (*models.Identity, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	// Demo emails are reserved: a registration matching one would create a
	// shadow account that can never win the demo-first login precedence.
	for _, acct := range s.demo {
		if acct.identity.Email == email {
			return nil, ErrEmailTaken
		}
	}

	registered, err := s.loadRegistered(ctx)
	if err != nil {
		utils.GetLogger().Error("Register: failed to load registered identities", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	for _, rec := range registered {
		if rec.Email == email {
			return nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	rec := models.RegisteredIdentity{
		Identity: models.Identity{
			ID:    uuid.New().String(),
			Name:  name,
			Email: email,
			Phone: phone,
			Role:  models.RoleUser,
		},
		PasswordHash: string(hash),
	}
	registered = append(registered, rec)
	if err := s.saveRegistered(ctx, registered); err != nil {
		utils.GetLogger().Error("Register: failed to persist registered identities", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	// Auto-login, same side effects as a successful Login.
	return s.activate(ctx, rec.Projection())
}

func (s *DefaultStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	if err := s.KV.Remove(ctx, CurrentUserKey); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}
	return nil
}

func (s *DefaultStore) Current() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

func (s *DefaultStore) Lookup(ctx context.Context, id string) (*models.Identity, error) {
	for _, acct := range s.demo {
		if acct.identity.ID == id {
			cp := acct.identity
			return &cp, nil
		}
	}
	registered, err := s.loadRegistered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registered identities: %w", err)
	}
	for _, rec := range registered {
		if rec.ID == id {
			proj := rec.Projection()
			return &proj, nil
		}
	}
	return nil, fmt.Errorf("identity %s not found", id)
}

// activate sets the active identity and writes it through to storage.
func (s *DefaultStore) activate(ctx context.Context, identity models.Identity) (*models.Identity, error) {
	data, err := json.Marshal(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session identity: %w", err)
	}
	if err := s.KV.Set(ctx, CurrentUserKey, string(data)); err != nil {
		return nil, fmt.Errorf("failed to persist session identity: %w", err)
	}
	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()
	cp := identity
	return &cp, nil
}

// loadRegistered reads the registered set through from storage. Absent or
// unparseable values yield an empty set.
func (s *DefaultStore) loadRegistered(ctx context.Context) ([]models.RegisteredIdentity, error) {
	raw, err := s.KV.Get(ctx, RegisteredUsersKey)
	if err == storage.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var registered []models.RegisteredIdentity
	if err := json.Unmarshal([]byte(raw), &registered); err != nil {
		utils.GetLogger().Warn("Discarding unparseable registered identities", zap.Error(err))
		return nil, nil
	}
	return registered, nil
}

func (s *DefaultStore) saveRegistered(ctx context.Context, registered []models.RegisteredIdentity) error {
	data, err := json.Marshal(registered)
	if err != nil {
		return err
	}
	return s.KV.Set(ctx, RegisteredUsersKey, string(data))
}
