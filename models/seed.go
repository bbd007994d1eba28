package models

// SampleDoctors is the catalog seeded into an empty deployment.
var SampleDoctors = []Doctor{
	{
		ID:             "1",
		Name:           "Sarah Johnson",
		Specialization: "Cardiology",
		Location:       "Downtown Medical Center",
		Rating:         4.9,
		Reviews:        127,
		Experience:     "15+ years of experience in cardiovascular medicine. Specialized in heart disease prevention and treatment.",
		AvailableTimes: []string{"09:00 AM", "10:00 AM", "11:00 AM", "02:00 PM", "03:00 PM", "04:00 PM"},
	},
	{
		ID:             "2",
		Name:           "Michael Chen",
		Specialization: "Dermatology",
		Location:       "Westside Clinic",
		Rating:         4.8,
		Reviews:        95,
		Experience:     "12+ years treating skin conditions, acne, and cosmetic dermatology procedures.",
		AvailableTimes: []string{"08:00 AM", "09:00 AM", "01:00 PM", "02:00 PM", "03:00 PM"},
	},
	{
		ID:             "3",
		Name:           "Emily Rodriguez",
		Specialization: "Pediatrics",
		Location:       "Children's Health Center",
		Rating:         4.9,
		Reviews:        203,
		Experience:     "18+ years caring for infants, children, and adolescents. Board-certified pediatrician.",
		AvailableTimes: []string{"08:30 AM", "09:30 AM", "10:30 AM", "02:30 PM", "03:30 PM", "04:30 PM"},
	},
	{
		ID:             "4",
		Name:           "David Wilson",
		Specialization: "Orthopedics",
		Location:       "Sports Medicine Institute",
		Rating:         4.7,
		Reviews:        156,
		Experience:     "20+ years in orthopedic surgery and sports medicine. Specialized in joint replacement.",
		AvailableTimes: []string{"07:00 AM", "08:00 AM", "01:00 PM", "02:00 PM"},
	},
	{
		ID:             "5",
		Name:           "Lisa Thompson",
		Specialization: "Neurology",
		Location:       "Brain & Spine Center",
		Rating:         4.8,
		Reviews:        89,
		Experience:     "14+ years treating neurological disorders, epilepsy, and movement disorders.",
		AvailableTimes: []string{"09:00 AM", "10:00 AM", "11:00 AM", "03:00 PM", "04:00 PM"},
	},
	{
		ID:             "6",
		Name:           "Robert Martinez",
		Specialization: "Internal Medicine",
		Location:       "Family Health Clinic",
		Rating:         4.6,
		Reviews:        178,
		Experience:     "16+ years in primary care and preventive medicine for adults.",
		AvailableTimes: []string{"08:00 AM", "09:00 AM", "10:00 AM", "02:00 PM", "03:00 PM", "04:00 PM"},
	},
}
