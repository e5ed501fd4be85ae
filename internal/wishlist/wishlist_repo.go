package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=wishlist_repo.go -destination=../mock/wishlist/wishlist_repo_mock.go -package=mock
type GuestRepository interface {
	List(ctx context.Context, sessionID string) ([]Entry, error)
	// Add stores e unless its product is already there and reports whether
	// it was stored.
	Add(ctx context.Context, sessionID string, e Entry) (bool, error)
	Remove(ctx context.Context, sessionID, productID string) (bool, error)
}

type guestRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewGuestRepository(rdb *redis.Client, ttl time.Duration) GuestRepository {
	return &guestRepository{rdb: rdb, ttl: ttl}
}

// The guest wishlist is a hash of product id to entry JSON.
func guestKey(sessionID string) string {
	return fmt.Sprintf("wishlist:guest:%s", sessionID)
}

func (r *guestRepository) List(ctx context.Context, sessionID string) ([]Entry, error) {
	fields, err := r.rdb.HGetAll(ctx, guestKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(fields))
	for _, raw := range fields {
		var e Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].AddedAt.Before(entries[j].AddedAt)
	})
	return entries, nil
}

func (r *guestRepository) Add(ctx context.Context, sessionID string, e Entry) (bool, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return false, err
	}

	key := guestKey(sessionID)
	var added *redis.BoolCmd
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		added = pipe.HSetNX(ctx, key, e.ProductID, raw)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		return false, err
	}
	return added.Val(), nil
}

func (r *guestRepository) Remove(ctx context.Context, sessionID, productID string) (bool, error) {
	n, err := r.rdb.HDel(ctx, guestKey(sessionID), productID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
