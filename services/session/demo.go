package session

import (
	"log"

	"carebook/models"

	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "password123"

// demoAccount pairs a fixed identity with its credential hash. The demo set
// is read-only and never written back into the registered set.
type demoAccount struct {
	identity     models.Identity
	passwordHash []byte
}

// DemoIdentities is the fixed built-in account set, checked before the
// registered set at login and listed first in the merged users view.
var DemoIdentities = []models.Identity{
	{ID: "1", Name: "Admin User", Email: "admin@demo.com", Phone: "+1 (555) 123-4567", Role: models.RoleAdmin},
	{ID: "2", Name: "John Doe", Email: "user@demo.com", Phone: "+1 (555) 987-6543", Role: models.RoleUser},
}

func demoAccounts() []demoAccount {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo credentials: %v", err)
	}
	accounts := make([]demoAccount, 0, len(DemoIdentities))
	for _, id := range DemoIdentities {
		accounts = append(accounts, demoAccount{identity: id, passwordHash: hash})
	}
	return accounts
}
