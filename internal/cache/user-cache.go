package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/SundayYogurt/contacts_service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "user:"
	entryTTL  = 3600 * time.Second
)

// snapshot is the cached form of a user row. It keeps the fields the domain
// model hides from JSON responses, so a cached user round-trips intact.
type snapshot struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Token    string `json:"token"`
	Verified bool   `json:"verified"`
	Avatar   string `json:"avatar"`
}

// UserCache is a read-through cache over the user store. Entries are only
// ever written on a read miss and expire after one hour; mutations do not
// invalidate them, so a stale window up to the TTL is expected.
type UserCache struct {
	rdb *redis.Client
}

func NewUserCache(rdb *redis.Client) *UserCache {
	return &UserCache{rdb: rdb}
}

// Get returns the cached user or (nil, nil) on a miss.
func (c *UserCache) Get(ctx context.Context, email string) (*domain.User, error) {
	data, err := c.rdb.Get(ctx, keyPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}

	return &domain.User{
		ID:       snap.ID,
		Email:    snap.Email,
		Password: snap.Password,
		Token:    snap.Token,
		Verified: snap.Verified,
		Avatar:   snap.Avatar,
	}, nil
}

func (c *UserCache) Set(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(snapshot{
		ID:       user.ID,
		Email:    user.Email,
		Password: user.Password,
		Token:    user.Token,
		Verified: user.Verified,
		Avatar:   user.Avatar,
	})
	if err != nil {
		return err
	}

	key := keyPrefix + user.Email
	if err := c.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return err
	}
	return c.rdb.Expire(ctx, key, entryTTL).Err()
}
