package model

import (
	"errors"
	"strings"
)

// Shared validation sentinels for create requests.
var (
	ErrMissingFields = errors.New("all fields are required")
	ErrInvalidRole   = errors.New("role must be admin or user")
)

// Restaurant is a venue managed through the dashboard. The ID is
// caller-supplied and acts as the unique key.
type Restaurant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MatchesQuery reports whether the restaurant name contains the query,
// case-insensitively. An empty query matches everything.
func (r Restaurant) MatchesQuery(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(q))
}

// CreateRestaurantRequest carries the fields for creating a restaurant.
type CreateRestaurantRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Normalize trims whitespace from both fields.
func (r *CreateRestaurantRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
}

// Validate checks that both fields are present.
func (r CreateRestaurantRequest) Validate() error {
	if r.ID == "" || r.Name == "" {
		return ErrMissingFields
	}
	return nil
}
