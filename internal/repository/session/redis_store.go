package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"job-portal-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore backs the session table with Redis. Expiry is delegated to
// key TTLs, so expired sessions disappear without a sweeper.
func NewRedisStore(client *redis.Client) domain.SessionStore {
	return &redisStore{client: client}
}

func (s *redisStore) Create(ctx context.Context, sess *domain.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session: expiry is in the past")
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+sess.ID, payload, ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var sess domain.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
