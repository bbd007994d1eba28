package models

import "time"

// Appointment statuses. A cancelled appointment is retained, never removed.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Appointment represents a booking of a doctor's time slot. DoctorName and
// DoctorSpecialization are copied at booking time and not kept in sync with
// later doctor edits.
type Appointment struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	DoctorID             string    `json:"doctorId"`
	DoctorName           string    `json:"doctorName"`
	DoctorSpecialization string    `json:"doctorSpecialization"`
	Date                 string    `json:"date"` // "YYYY-MM-DD"
	Time                 string    `json:"time"` // one of the doctor's AvailableTimes labels
	Description          string    `json:"description"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
}
