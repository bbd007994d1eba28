package handlers

import "carebook/services/session"

// HandlerBundle groups every handler the route registrar needs, assembled in
// main from the wired services.
type HandlerBundle struct {
	Sessions session.Store

	Auth         *AuthHandler
	Doctors      *DoctorHandler
	Appointments *AppointmentHandler
	Admin        *AdminHandler
}
