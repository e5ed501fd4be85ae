package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go-clothing-store/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type memoryIdempotencyStore struct {
	mu     sync.Mutex
	saved  map[string]StoredResponse
	locked map[string]bool
}

func newMemoryIdempotencyStore() *memoryIdempotencyStore {
	return &memoryIdempotencyStore{saved: map[string]StoredResponse{}, locked: map[string]bool{}}
}

func (m *memoryIdempotencyStore) Load(_ context.Context, key string) (*StoredResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if res, ok := m.saved[key]; ok {
		return &res, nil
	}
	return nil, nil
}

func (m *memoryIdempotencyStore) Save(_ context.Context, key string, res StoredResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[key] = res
	return nil
}

func (m *memoryIdempotencyStore) Lock(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locked[key] {
		return false, nil
	}
	m.locked[key] = true
	return true, nil
}

func (m *memoryIdempotencyStore) Unlock(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locked, key)
	return nil
}

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(store IdempotencyStore, calls *int, status int) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			SetSession(c, session.Session{ID: "sid-1"})
			c.Next()
		})
		r.POST("/checkout", Idempotency(store, nil), func(c *gin.Context) {
			*calls++
			c.JSON(status, gin.H{"call": *calls})
		})
		return r
	}

	send := func(r *gin.Engine, key, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
		if key != "" {
			req.Header.Set(IdempotencyKeyHeader, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("replays_stored_response", func(t *testing.T) {
		calls := 0
		r := newRouter(newMemoryIdempotencyStore(), &calls, http.StatusCreated)

		first := send(r, "k1", `{"a":1}`)
		second := send(r, "k1", `{"a":1}`)

		assert.Equal(t, 1, calls)
		assert.Equal(t, http.StatusCreated, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))
	})

	t.Run("different_payload_conflicts", func(t *testing.T) {
		calls := 0
		r := newRouter(newMemoryIdempotencyStore(), &calls, http.StatusCreated)

		send(r, "k1", `{"a":1}`)
		w := send(r, "k1", `{"a":2}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 1, calls)
	})

	t.Run("failed_request_is_not_stored", func(t *testing.T) {
		calls := 0
		store := newMemoryIdempotencyStore()
		r := newRouter(store, &calls, http.StatusUnprocessableEntity)

		send(r, "k1", `{}`)
		send(r, "k1", `{}`)

		assert.Equal(t, 2, calls)
		assert.Empty(t, store.locked)
	})

	t.Run("held_lock_rejects", func(t *testing.T) {
		calls := 0
		store := newMemoryIdempotencyStore()
		store.locked["sid-1:k1"] = true
		r := newRouter(store, &calls, http.StatusCreated)

		w := send(r, "k1", `{}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Zero(t, calls)
	})

	t.Run("no_header_passes_through", func(t *testing.T) {
		calls := 0
		r := newRouter(newMemoryIdempotencyStore(), &calls, http.StatusCreated)

		send(r, "", `{}`)
		send(r, "", `{}`)

		assert.Equal(t, 2, calls)
	})
}
