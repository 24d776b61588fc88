package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/robalobadob/phonicle/internal/persist"
)

const recordKeyPrefix = "game:"

// Redis is a Store keeping each player's record as a JSON string.
type Redis struct {
	client *redis.Client
}

var _ Store = (*Redis)(nil)

// NewRedis connects to addr and checks the connection.
func NewRedis(ctx context.Context, addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &Redis{client: client}, nil
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Save(ctx context.Context, playerID string, rec persist.Record) error {
	b, err := persist.Marshal(rec)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}
	if err := r.client.Set(ctx, recordKeyPrefix+playerID, b, 0).Err(); err != nil {
		return fmt.Errorf("failed to set record: %w", err)
	}
	return nil
}

func (r *Redis) Load(ctx context.Context, playerID string) (*persist.Record, error) {
	raw, err := r.client.Get(ctx, recordKeyPrefix+playerID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return persist.Unmarshal(raw)
}

func (r *Redis) Close() error { return r.client.Close() }
