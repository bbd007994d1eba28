package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"carebook/models"
	"carebook/services/session"
	"carebook/storage"
	"carebook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Storage keys owned by the catalog store.
const (
	DoctorsKey      = "doctors"
	AppointmentsKey = "appointments"
)

// NewDefaultStore materializes both collections from storage once. An absent
// or unparseable doctors value seeds the sample catalog; appointments seed
// empty.
func NewDefaultStore(ctx context.Context, kv storage.KV) *DefaultStore {
	s := &DefaultStore{KV: kv}
	s.doctors = loadCollection(ctx, kv, DoctorsKey, models.SampleDoctors)
	s.appointments = loadCollection[models.Appointment](ctx, kv, AppointmentsKey, nil)
	return s
}

// loadCollection reads a JSON collection, falling back to the seed when the
// key is absent or its value does not parse.
func loadCollection[T any](ctx context.Context, kv storage.KV, key string, seed []T) []T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if err != storage.ErrNotFound {
			utils.GetLogger().Error("Failed to read collection, using seed", zap.String("key", key), zap.Error(err))
		}
		return append([]T(nil), seed...)
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		utils.GetLogger().Warn("Discarding unparseable collection", zap.String("key", key), zap.Error(err))
		return append([]T(nil), seed...)
	}
	return items
}

func (s *DefaultStore) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Doctor(nil), s.doctors...), nil
}

func (s *DefaultStore) GetDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.doctors {
		if doc.ID == doctorID {
			cp := doc
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("doctor %s not found", doctorID)
}

func (s *DefaultStore) AddDoctor(ctx context.Context, input DoctorInput) (*models.Doctor, error) {
	// Coerce the form strings; a bad number becomes zero, the caller is
	// trusted for everything else.
	rating, _ := strconv.ParseFloat(input.Rating, 64)
	reviews, _ := strconv.Atoi(input.Reviews)

	doc := models.Doctor{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Specialization: input.Specialization,
		Location:       input.Location,
		Rating:         rating,
		Reviews:        reviews,
		Experience:     input.Experience,
		AvailableTimes: input.AvailableTimes,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	updated := append(append([]models.Doctor(nil), s.doctors...), doc)
	if err := s.persist(ctx, DoctorsKey, updated); err != nil {
		return nil, fmt.Errorf("failed to persist doctors: %w", err)
	}
	s.doctors = updated
	return &doc, nil
}

func (s *DefaultStore) RemoveDoctor(ctx context.Context, doctorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := make([]models.Doctor, 0, len(s.doctors))
	for _, doc := range s.doctors {
		if doc.ID != doctorID {
			updated = append(updated, doc)
		}
	}
	if err := s.persist(ctx, DoctorsKey, updated); err != nil {
		return fmt.Errorf("failed to persist doctors: %w", err)
	}
	s.doctors = updated
	return nil
}

func (s *DefaultStore) ListUsers(ctx context.Context) ([]models.Identity, error) {
	raw, err := s.KV.Get(ctx, session.RegisteredUsersKey)
	if err == storage.ErrNotFound {
		return append([]models.Identity(nil), session.DemoIdentities...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read registered identities: %w", err)
	}
	var registered []models.RegisteredIdentity
	if err := json.Unmarshal([]byte(raw), &registered); err != nil {
		utils.GetLogger().Warn("Discarding unparseable registered identities", zap.Error(err))
		return append([]models.Identity(nil), session.DemoIdentities...), nil
	}
	users := append([]models.Identity(nil), session.DemoIdentities...)
	for _, rec := range registered {
		users = append(users, rec.Projection())
	}
	return users, nil
}

// persist writes the full collection through to storage.
func (s *DefaultStore) persist(ctx context.Context, key string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return err
	}
	return s.KV.Set(ctx, key, string(data))
}
