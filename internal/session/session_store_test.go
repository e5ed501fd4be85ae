package session_test

import (
	"context"
	"testing"
	"time"

	"go-clothing-store/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProfileStore(t *testing.T) (*miniredis.Miniredis, session.ProfileStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, session.NewRedisProfileStore(rdb)
}

func TestRedisProfileStore(t *testing.T) {
	ctx := context.Background()
	rani := session.User{ID: "u-1", Name: "Rani", Email: "rani@example.com", Role: "customer"}

	t.Run("save_then_load", func(t *testing.T) {
		mr, store := setupProfileStore(t)

		require.NoError(t, store.Save(ctx, "sid-1", rani, 30*time.Minute))

		got, err := store.Load(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, "u-1", got.ID)
		assert.Equal(t, "rani@example.com", got.Email)
		assert.Equal(t, 30*time.Minute, mr.TTL("session:sid-1:user"))
	})

	t.Run("missing_profile", func(t *testing.T) {
		_, store := setupProfileStore(t)

		_, err := store.Load(ctx, "sid-1")
		assert.ErrorIs(t, err, session.ErrProfileNotFound)
	})

	t.Run("unparseable_profile_counts_as_absent", func(t *testing.T) {
		mr, store := setupProfileStore(t)
		require.NoError(t, mr.Set("session:sid-1:user", "{\"id\":"))

		_, err := store.Load(ctx, "sid-1")
		assert.ErrorIs(t, err, session.ErrProfileNotFound)
	})

	t.Run("expired_profile_counts_as_absent", func(t *testing.T) {
		mr, store := setupProfileStore(t)
		require.NoError(t, store.Save(ctx, "sid-1", rani, time.Minute))

		mr.FastForward(2 * time.Minute)

		_, err := store.Load(ctx, "sid-1")
		assert.ErrorIs(t, err, session.ErrProfileNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		mr, store := setupProfileStore(t)
		require.NoError(t, store.Save(ctx, "sid-1", rani, time.Minute))

		require.NoError(t, store.Delete(ctx, "sid-1"))
		assert.False(t, mr.Exists("session:sid-1:user"))
	})

	t.Run("empty_session_id", func(t *testing.T) {
		_, store := setupProfileStore(t)

		assert.ErrorIs(t, store.Save(ctx, "", rani, time.Minute), session.ErrEmptySessionID)
		_, err := store.Load(ctx, "")
		assert.ErrorIs(t, err, session.ErrProfileNotFound)
		assert.NoError(t, store.Delete(ctx, ""))
	})
}
