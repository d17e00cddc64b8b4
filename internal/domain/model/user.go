// Package model contains the domain entities for the dashboard.
package model

import (
	"strings"

	"github.com/foodbot-ai/dashboard-api/internal/domain/auth"
)

// SeedUserCount is the number of protected default accounts. Users with
// IDs at or below this value cannot be deleted.
const SeedUserCount = 2

// User is an operator account. Accounts live in the mirror store only;
// passwords are stored as entered (the upstream product keeps a flat
// credential list, see the login service).
type User struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     auth.Role `json:"role"`
}

// IsSeed reports whether the user is one of the protected default accounts.
func (u User) IsSeed() bool { return u.ID <= SeedUserCount && u.ID > 0 }

// Redacted returns a copy safe for API responses.
func (u User) Redacted() User {
	u.Password = ""
	return u
}

// SeedUsers returns the two default accounts that are always present.
func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "Yusuf", Email: "yusuf@foodbot.ai", Password: "Yusuf@9525", Role: auth.RoleAdmin},
		{ID: 2, Name: "Poncho", Email: "poncho@foodbot.ai", Password: "Poncho@123", Role: auth.RoleUser},
	}
}

// CreateUserRequest carries the fields for creating a user.
type CreateUserRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     auth.Role `json:"role"`
}

// Normalize trims whitespace and defaults the role to "user".
func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	if r.Role == "" {
		r.Role = auth.RoleUser
	}
}

// Validate checks that all fields are present and the role is known.
func (r CreateUserRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Password == "" {
		return ErrMissingFields
	}
	if r.Role != auth.RoleAdmin && r.Role != auth.RoleUser {
		return ErrInvalidRole
	}
	return nil
}
