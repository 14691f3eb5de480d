package infra_redis_cache

import (
	"context"
	"time"

	"github.com/go-redis/redis"
)

// Driver is the shared cache collaborator: plain get/set/del with TTL.
// Values are opaque bytes; callers own the encoding.
type Driver struct {
	client *redis.Client
}

func New(client *redis.Client) *Driver {
	return &Driver{client: client}
}

func (d *Driver) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, err := d.client.Get(key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (d *Driver) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	return d.client.Set(key, value, ttl).Err()
}

func (d *Driver) Del(_ context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return d.client.Del(keys...).Err()
}
