package cart_test

import (
	"context"
	"testing"
	"time"

	"go-clothing-store/internal/cart"
	"go-clothing-store/internal/coupon"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func addLine(l cart.Line) func([]cart.Line) ([]cart.Line, error) {
	return func(lines []cart.Line) ([]cart.Line, error) {
		return append(lines, l), nil
	}
}

func TestGuestRepository_Update(t *testing.T) {
	ctx := context.Background()
	shirt := cart.Line{Key: cart.GuestKey("p1", "M", "Black"), ProductID: "p1", Size: "M", Color: "Black", Quantity: 2, UnitPrice: dec("20")}
	hat := cart.Line{Key: cart.GuestKey("p2", "", ""), ProductID: "p2", Quantity: 1, UnitPrice: dec("15")}

	t.Run("stores_lines_with_ttl", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		repo := cart.NewGuestRepository(rdb, time.Hour)

		saved, err := repo.Update(ctx, "sid-1", addLine(shirt))
		require.NoError(t, err)
		require.Len(t, saved, 1)

		loaded, err := repo.Load(ctx, "sid-1")
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, shirt.Key, loaded[0].Key)
		assert.Equal(t, 2, loaded[0].Quantity)
		assert.True(t, loaded[0].UnitPrice.Equal(dec("20")))
		assert.Equal(t, time.Hour, mr.TTL("cart:guest:sid-1"))
	})

	t.Run("emptied_cart_deletes_key", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		repo := cart.NewGuestRepository(rdb, time.Hour)

		_, err := repo.Update(ctx, "sid-1", addLine(shirt))
		require.NoError(t, err)

		_, err = repo.Update(ctx, "sid-1", func([]cart.Line) ([]cart.Line, error) { return nil, nil })
		require.NoError(t, err)
		assert.False(t, mr.Exists("cart:guest:sid-1"))
	})

	t.Run("callback_error_saves_nothing", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		repo := cart.NewGuestRepository(rdb, time.Hour)

		_, err := repo.Update(ctx, "sid-1", func([]cart.Line) ([]cart.Line, error) { return nil, cart.ErrInvalidQty })
		assert.ErrorIs(t, err, cart.ErrInvalidQty)
		assert.False(t, mr.Exists("cart:guest:sid-1"))
	})

	t.Run("concurrent_write_is_retried_not_lost", func(t *testing.T) {
		_, rdb := setupRedis(t)
		repo := cart.NewGuestRepository(rdb, time.Hour)
		other := cart.NewGuestRepository(rdb, time.Hour)

		calls := 0
		saved, err := repo.Update(ctx, "sid-1", func(lines []cart.Line) ([]cart.Line, error) {
			calls++
			if calls == 1 {
				// another request lands between our read and our write
				_, err := other.Update(ctx, "sid-1", addLine(hat))
				require.NoError(t, err)
			}
			return append(lines, shirt), nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Len(t, saved, 2)

		loaded, err := repo.Load(ctx, "sid-1")
		require.NoError(t, err)
		assert.Len(t, loaded, 2)
	})

	t.Run("gives_up_under_constant_contention", func(t *testing.T) {
		_, rdb := setupRedis(t)
		repo := cart.NewGuestRepository(rdb, time.Hour)

		_, err := repo.Update(ctx, "sid-1", func(lines []cart.Line) ([]cart.Line, error) {
			require.NoError(t, rdb.Set(ctx, "cart:guest:sid-1", "[]", 0).Err())
			return append(lines, shirt), nil
		})

		assert.ErrorIs(t, err, cart.ErrCartUnavailable)
	})
}

func TestGuestRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_cart_is_empty", func(t *testing.T) {
		_, rdb := setupRedis(t)

		lines, err := cart.NewGuestRepository(rdb, time.Hour).Load(ctx, "nobody")

		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("unreadable_cart_is_empty", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		require.NoError(t, mr.Set("cart:guest:sid-1", "{not json"))

		lines, err := cart.NewGuestRepository(rdb, time.Hour).Load(ctx, "sid-1")

		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestCouponRepository(t *testing.T) {
	ctx := context.Background()
	_, rdb := setupRedis(t)
	repo := cart.NewCouponRepository(rdb, time.Hour)

	got, err := repo.Get(ctx, "guest:sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, "guest:sid-1", coupon.Coupon{Code: "SAVE10", Type: coupon.Percentage, Value: dec("10")}))
	require.NoError(t, repo.Set(ctx, "guest:sid-1", coupon.Coupon{Code: "FLAT5", Type: coupon.Fixed, Value: dec("5")}))

	got, err = repo.Get(ctx, "guest:sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "FLAT5", got.Code, "one active coupon, the latest wins")
	assert.True(t, got.Discount(dec("55")).Equal(dec("5")))

	require.NoError(t, repo.Delete(ctx, "guest:sid-1"))
	got, err = repo.Get(ctx, "guest:sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
