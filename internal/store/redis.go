package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const eventChannel = "mirror:events"

// RedisStore implements Store on Redis. Values live under a key prefix and
// change events travel over a pub/sub channel, so every running dashboard
// instance observes writes from any other.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	logger *slog.Logger
}

// RedisStoreOptions groups dependencies for NewRedisStore.
type RedisStoreOptions struct {
	Client redis.UniversalClient
	Prefix string       // default "mirror:"
	Logger *slog.Logger // optional
}

// NewRedisStore creates a Redis-backed mirror store.
func NewRedisStore(opts RedisStoreOptions) *RedisStore {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "mirror:"
	}
	return &RedisStore{client: opts.Client, prefix: prefix, logger: opts.Logger}
}

// Load retrieves a value by key. Returns nil when the key is absent.
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	result, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Key doesn't exist
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	return []byte(result), nil
}

// Save stores a value and broadcasts a change event. Mirror values never
// expire; the store is the sole persistence tier.
func (s *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	s.publish(ctx, key)
	return nil
}

// Delete removes a key and broadcasts a change event when it existed.
func (s *RedisStore) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("key cannot be empty")
	}

	result, err := s.client.Del(ctx, s.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis del: %w", err)
	}

	if result > 0 {
		s.publish(ctx, key)
	}
	return result > 0, nil
}

// Subscribe listens for change events until the cancel func is called or
// the context ends.
func (s *RedisStore) Subscribe(ctx context.Context) (<-chan Event, func()) {
	subCtx, cancel := context.WithCancel(ctx)
	pubsub := s.client.Subscribe(subCtx, s.prefix+eventChannel)
	events := make(chan Event, subscriberBuffer)

	go func() {
		defer close(events)
		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case events <- Event{Key: msg.Payload}:
				default:
					// Slow subscriber; drop rather than block the pump.
				}
			}
		}
	}()

	return events, func() {
		cancel()
		if err := pubsub.Close(); err != nil && s.logger != nil {
			s.logger.Error("close mirror subscription", "error", err)
		}
	}
}

// Health checks the health of the Redis connection.
func (s *RedisStore) Health(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) publish(ctx context.Context, key string) {
	if err := s.client.Publish(ctx, s.prefix+eventChannel, key).Err(); err != nil && s.logger != nil {
		// Broadcast is best-effort; readers still see the write on next load.
		s.logger.ErrorContext(ctx, "publish mirror event failed", "key", key, "error", err)
	}
}
