package domain

import "time"

// Role maps a name to the actions its holders may perform.
type Role struct {
	Name         string
	Capabilities Capabilities
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultRoles is the role table seeded on a fresh database.
func DefaultRoles() []*Role {
	return []*Role{
		{Name: "admin", Capabilities: NewCapabilities(CreateAction, ReadAction, UpdateAction, DeleteAction)},
		{Name: "editor", Capabilities: NewCapabilities(CreateAction, ReadAction, UpdateAction)},
		{Name: "user", Capabilities: NewCapabilities(ReadAction)},
	}
}
