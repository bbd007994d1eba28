package catalog

import (
	"context"
	"fmt"

	"carebook/models"
)

func (s *DefaultStore) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]models.Appointment, 0, len(s.appointments)), s.appointments...), nil
}

func (s *DefaultStore) ListAppointmentsForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Appointment, 0)
	for _, appt := range s.appointments {
		if appt.UserID == userID {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (s *DefaultStore) AddAppointment(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Uniqueness guard: one non-cancelled appointment per (doctor, date, time).
	for _, existing := range s.appointments {
		if existing.Status == models.StatusCancelled {
			continue
		}
		if existing.DoctorID == appt.DoctorID && existing.Date == appt.Date && existing.Time == appt.Time {
			return nil, &SlotTakenError{DoctorID: appt.DoctorID, Date: appt.Date, Time: appt.Time}
		}
	}

	updated := append(append([]models.Appointment(nil), s.appointments...), appt)
	if err := s.persist(ctx, AppointmentsKey, updated); err != nil {
		return nil, fmt.Errorf("failed to persist appointments: %w", err)
	}
	s.appointments = updated
	return &appt, nil
}

func (s *DefaultStore) CancelAppointment(ctx context.Context, appointmentID string) error {
	return s.setStatus(ctx, appointmentID, models.StatusCancelled, "")
}

func (s *DefaultStore) CompleteAppointment(ctx context.Context, appointmentID string) error {
	// Only confirmed appointments can complete; cancelled ones stay cancelled.
	return s.setStatus(ctx, appointmentID, models.StatusCompleted, models.StatusConfirmed)
}

// setStatus flips the status of the matching appointment in place. When
// requireStatus is non-empty only records currently in that status change.
// A missing id leaves state untouched.
func (s *DefaultStore) setStatus(ctx context.Context, appointmentID, status, requireStatus string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	updated := append([]models.Appointment(nil), s.appointments...)
	for i := range updated {
		if updated[i].ID != appointmentID {
			continue
		}
		if requireStatus != "" && updated[i].Status != requireStatus {
			break
		}
		if updated[i].Status != status {
			updated[i].Status = status
			changed = true
		}
		break
	}
	if !changed {
		return nil
	}
	if err := s.persist(ctx, AppointmentsKey, updated); err != nil {
		return fmt.Errorf("failed to persist appointments: %w", err)
	}
	s.appointments = updated
	return nil
}
