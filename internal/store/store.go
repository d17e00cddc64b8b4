// Package store implements the mirror store: the dashboard's only
// persistence tier. It is a small observable key/value store holding the
// user and restaurant lists plus the last-selected identifiers, with a
// change broadcast so other open views refresh without a reload.
package store

import "context"

// Persisted keys. This is the entire persisted state layout.
const (
	KeyUsers        = "app_users"
	KeyRestaurants  = "app_restaurants"
	KeyRestaurantID = "restaurant_id"
	KeyMenuID       = "menu_id"
)

// Event announces that the value under Key changed. Subscribers re-read
// the key; last write wins, there is no conflict detection.
type Event struct {
	Key string `json:"key"`
}

// Store is the mirror store contract. Load returns nil for an absent key.
// Save and Delete broadcast an Event to every live subscriber.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) (bool, error)

	// Subscribe registers a listener for change events. The returned
	// cancel func releases the subscription and closes the channel.
	Subscribe(ctx context.Context) (<-chan Event, func())

	// Health checks the health of the backing store.
	Health(ctx context.Context) error
}
