package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyProfile = "session:%s:user"

//go:generate mockgen -source=session_store.go -destination=../mock/session/session_store_mock.go -package=mock
type ProfileStore interface {
	Save(ctx context.Context, sessionID string, u User, ttl time.Duration) error
	Load(ctx context.Context, sessionID string) (User, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisProfileStore struct {
	rdb *redis.Client
}

func NewRedisProfileStore(rdb *redis.Client) ProfileStore {
	return &redisProfileStore{rdb: rdb}
}

func (s *redisProfileStore) Save(ctx context.Context, sessionID string, u User, ttl time.Duration) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	payload, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, fmt.Sprintf(keyProfile, sessionID), payload, ttl).Err()
}

func (s *redisProfileStore) Load(ctx context.Context, sessionID string) (User, error) {
	if sessionID == "" {
		return User{}, ErrProfileNotFound
	}
	raw, err := s.rdb.Get(ctx, fmt.Sprintf(keyProfile, sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return User{}, ErrProfileNotFound
		}
		return User{}, err
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		// unparseable profile counts as absent
		return User{}, ErrProfileNotFound
	}
	return u, nil
}

func (s *redisProfileStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.rdb.Del(ctx, fmt.Sprintf(keyProfile, sessionID)).Err()
}
