package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eventstay/internal/domain"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "eventstay:booking:user"

// BookingCache stores each user's booking view as JSON under one key per
// user. Writes to a booking must call Invalidate for its user.
type BookingCache struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
}

func NewBookingCache(client redis.Cmdable, ttl time.Duration) *BookingCache {
	return &BookingCache{client: client, ttl: ttl, prefix: defaultPrefix}
}

func (c *BookingCache) key(userID int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, userID)
}

func (c *BookingCache) Get(ctx context.Context, userID int64) (*domain.Booking, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var b domain.Booking
	if err := json.Unmarshal(raw, &b); err != nil {
		// A corrupt entry is a miss; the next Set overwrites it.
		return nil, nil
	}
	return &b, nil
}

func (c *BookingCache) Set(ctx context.Context, b *domain.Booking) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.key(b.UserID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *BookingCache) Invalidate(ctx context.Context, userID int64) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
