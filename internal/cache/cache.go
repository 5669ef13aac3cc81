package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client. Get/Set/Delete fail safe by swallowing
// connectivity errors; Load/Store/Remove report them.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Ping checks connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return errors.New("cache: client not configured")
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// fail safe: redis.Nil and outages both behave like a miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Del(ctx, key).Err()
	return nil
}

// Load reads a key without swallowing errors. ok is false when the key is absent.
func (c *Client) Load(ctx context.Context, key string) (value []byte, ok bool, err error) {
	if c == nil || c.client == nil {
		return nil, false, errors.New("cache: client not configured")
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return res, true, nil
}

// Store writes a key with no expiry.
func (c *Client) Store(ctx context.Context, key string, value []byte) error {
	if c == nil || c.client == nil {
		return errors.New("cache: client not configured")
	}
	return c.client.Set(ctx, key, value, 0).Err()
}

// Remove deletes a key, reporting redis errors.
func (c *Client) Remove(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return errors.New("cache: client not configured")
	}
	return c.client.Del(ctx, key).Err()
}
