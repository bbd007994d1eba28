package catalog

import (
	"context"
	"sync"

	"carebook/models"
	"carebook/storage"
)

// DoctorInput carries the raw admin-form fields for a new doctor. Rating and
// Reviews arrive as strings and are coerced by the store.
type DoctorInput struct {
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Location       string   `json:"location"`
	Rating         string   `json:"rating"`
	Reviews        string   `json:"reviews"`
	Experience     string   `json:"experience"`
	AvailableTimes []string `json:"availableTimes"`
}

// Store owns the doctor catalog, the appointment book, and the merged
// read-only users view. Collections are held in memory and written through to
// storage on every mutation.
type Store interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	GetDoctor(ctx context.Context, doctorID string) (*models.Doctor, error)
	AddDoctor(ctx context.Context, input DoctorInput) (*models.Doctor, error)
	// RemoveDoctor filters the doctor out of the catalog. Appointments
	// referencing it are left untouched.
	RemoveDoctor(ctx context.Context, doctorID string) error

	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListAppointmentsForUser(ctx context.Context, userID string) ([]models.Appointment, error)
	// AddAppointment appends a fully-formed confirmed appointment. The only
	// store-side check is the non-cancelled (doctor, date, time) uniqueness
	// guard; everything else is the caller's responsibility.
	AddAppointment(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	// CancelAppointment soft-deletes by flipping status to cancelled in
	// place. Idempotent; a missing id is a no-op.
	CancelAppointment(ctx context.Context, appointmentID string) error
	// CompleteAppointment flips a confirmed appointment to completed. A
	// missing id is a no-op, matching CancelAppointment.
	CompleteAppointment(ctx context.Context, appointmentID string) error

	// ListUsers returns the fixed demo identities followed by all registered
	// identities, credential-stripped, recomputed from storage on each call.
	ListUsers(ctx context.Context) ([]models.Identity, error)
}

// DefaultStore is the production implementation.
type DefaultStore struct {
	KV storage.KV

	mu           sync.RWMutex
	doctors      []models.Doctor
	appointments []models.Appointment
}
