package models

// Roles assignable to an identity. Self-registered accounts are always RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the credential-stripped account view used for the active
// session and for display. It never carries a password hash.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// RegisteredIdentity is the full persisted account record for a
// self-registered user. The hash stays in storage for credential checks and
// is stripped before the record leaves the session layer.
type RegisteredIdentity struct {
	Identity
	PasswordHash string `json:"passwordHash"`
}

// Projection returns the credential-stripped view of the record.
func (r RegisteredIdentity) Projection() Identity {
	return Identity{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Role:  r.Role,
	}
}
