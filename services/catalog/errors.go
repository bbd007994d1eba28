package catalog

import "fmt"

// SlotTakenError indicates the (doctor, date, time) triple is already held by
// a non-cancelled appointment.
type SlotTakenError struct {
	DoctorID string
	Date     string
	Time     string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("slot %s on %s is already booked for doctor %s", e.Time, e.Date, e.DoctorID)
}
