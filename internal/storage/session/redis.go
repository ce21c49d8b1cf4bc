package session

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"checkinn/internal/domain"
)

// sessionKey is the single fixed key holding the serialized session.
const sessionKey = "checkinn:session"

// RedisStore persists the session under one fixed key, for deployments
// where the client state lives in a shared redis rather than on disk.
type RedisStore struct {
	c   *redis.Client
	key string
}

func NewRedisStore(c *redis.Client) *RedisStore {
	return &RedisStore{c: c, key: sessionKey}
}

func (r *RedisStore) Load(ctx context.Context) (domain.Session, bool, error) {
	b, err := r.c.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, err
	}
	var s domain.Session
	if err := json.Unmarshal(b, &s); err != nil {
		log.Warn().Err(err).Str("key", r.key).Msg("stored session unreadable, treating as absent")
		return domain.Session{}, false, nil
	}
	return s, true, nil
}

func (r *RedisStore) Save(ctx context.Context, s domain.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.c.Set(ctx, r.key, b, 0).Err()
}

func (r *RedisStore) Clear(ctx context.Context) error {
	return r.c.Del(ctx, r.key).Err()
}
