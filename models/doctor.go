package models

// Doctor represents a bookable practitioner in the catalog.
type Doctor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Location       string   `json:"location"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	Experience     string   `json:"experience"`
	AvailableTimes []string `json:"availableTimes"` // opaque slot labels, compared by equality
}
