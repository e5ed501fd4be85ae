package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-clothing-store/internal/coupon"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_repo_mock.go -package=mock
type GuestRepository interface {
	Load(ctx context.Context, sessionID string) ([]Line, error)
	// Update applies fn to the stored lines atomically and saves the result.
	Update(ctx context.Context, sessionID string, fn func([]Line) ([]Line, error)) ([]Line, error)
	Delete(ctx context.Context, sessionID string) error
}

// CouponRepository keeps the single active coupon of a cart owner.
type CouponRepository interface {
	Get(ctx context.Context, owner string) (*coupon.Coupon, error)
	Set(ctx context.Context, owner string, c coupon.Coupon) error
	Delete(ctx context.Context, owner string) error
}

const maxUpdateRetries = 3

type guestRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewGuestRepository(rdb *redis.Client, ttl time.Duration) GuestRepository {
	return &guestRepository{rdb: rdb, ttl: ttl}
}

func guestCartKey(sessionID string) string {
	return fmt.Sprintf("cart:guest:%s", sessionID)
}

func (r *guestRepository) Load(ctx context.Context, sessionID string) ([]Line, error) {
	return loadLines(ctx, r.rdb, guestCartKey(sessionID))
}

func loadLines(ctx context.Context, c redis.Cmdable, key string) ([]Line, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []Line{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		// unreadable data counts as an empty cart
		return []Line{}, nil
	}
	return lines, nil
}

func (r *guestRepository) Update(ctx context.Context, sessionID string, fn func([]Line) ([]Line, error)) ([]Line, error) {
	key := guestCartKey(sessionID)
	var result []Line

	txf := func(tx *redis.Tx) error {
		current, err := loadLines(ctx, tx, key)
		if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		raw, err := json.Marshal(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(next) == 0 {
				pipe.Del(ctx, key)
				return nil
			}
			pipe.Set(ctx, key, raw, r.ttl)
			return nil
		})
		if err == nil {
			result = next
		}
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return result, err
	}
	return nil, ErrCartUnavailable
}

func (r *guestRepository) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, guestCartKey(sessionID)).Err()
}

type couponRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCouponRepository(rdb *redis.Client, ttl time.Duration) CouponRepository {
	return &couponRepository{rdb: rdb, ttl: ttl}
}

func couponKey(owner string) string {
	return fmt.Sprintf("cart:coupon:%s", owner)
}

func (r *couponRepository) Get(ctx context.Context, owner string) (*coupon.Coupon, error) {
	raw, err := r.rdb.Get(ctx, couponKey(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var c coupon.Coupon
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, nil
	}
	return &c, nil
}

func (r *couponRepository) Set(ctx context.Context, owner string, c coupon.Coupon) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, couponKey(owner), raw, r.ttl).Err()
}

func (r *couponRepository) Delete(ctx context.Context, owner string) error {
	return r.rdb.Del(ctx, couponKey(owner)).Err()
}
