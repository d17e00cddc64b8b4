package data

import "errors"

// Shared sentinel errors for mirror-store repositories.
var (
	// User repository sentinels.
	ErrEmailExists       = errors.New("email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrSeedUserProtected = errors.New("cannot delete default accounts")

	// Restaurant repository sentinels.
	ErrRestaurantIDExists = errors.New("restaurant ID already exists")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)
