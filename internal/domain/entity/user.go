// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the account behind every owned resource.
type User struct {
	ID             uuid.UUID // Generated by the database.
	Email          string    // Unique, stored lower-cased.
	FullName       string
	AvatarURL      string
	IsStaff        bool // Staff may read every agent task.
	EmailConfirmed bool // Set for accounts created through an OAuth provider.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Roles derives the token roles for the user.
func (u *User) Roles() Roles {
	roles := Roles{RoleUser}
	if u.IsStaff {
		roles = append(roles, RoleStaff)
	}

	return roles
}

// Profile is the 1:1 presentation record of a user.
type Profile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Email     string // Read from the owning user, never written through the profile.
	FullName  string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeEmail lower-cases and trims an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
