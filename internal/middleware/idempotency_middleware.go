package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go-clothing-store/internal/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	idempotencyLockTTL   = 30 * time.Second
	idempotencyCacheTTL  = 24 * time.Hour
)

var (
	ErrIdempotencyConflict = apperror.New(
		apperror.CodeConflict,
		"Idempotency key was already used with a different request",
		http.StatusConflict,
	)

	ErrRequestInProgress = apperror.New(
		apperror.CodeConflict,
		"A request with this idempotency key is still being processed",
		http.StatusConflict,
	)
)

// StoredResponse is the replayable outcome of a request.
type StoredResponse struct {
	RequestHash string `json:"requestHash"`
	Status      int    `json:"status"`
	Body        []byte `json:"body"`
}

type IdempotencyStore interface {
	Load(ctx context.Context, key string) (*StoredResponse, error)
	Save(ctx context.Context, key string, res StoredResponse) error
	// Lock reports false when another request holds key.
	Lock(ctx context.Context, key string) (bool, error)
	Unlock(ctx context.Context, key string) error
}

type redisIdempotencyStore struct {
	rdb *redis.Client
}

func NewRedisIdempotencyStore(rdb *redis.Client) IdempotencyStore {
	return &redisIdempotencyStore{rdb: rdb}
}

func (s *redisIdempotencyStore) Load(ctx context.Context, key string) (*StoredResponse, error) {
	raw, err := s.rdb.Get(ctx, "idempotency:"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var res StoredResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, nil
	}
	return &res, nil
}

func (s *redisIdempotencyStore) Save(ctx context.Context, key string, res StoredResponse) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, "idempotency:"+key, raw, idempotencyCacheTTL).Err()
}

func (s *redisIdempotencyStore) Lock(ctx context.Context, key string) (bool, error) {
	return s.rdb.SetNX(ctx, "idempotency:lock:"+key, 1, idempotencyLockTTL).Result()
}

func (s *redisIdempotencyStore) Unlock(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, "idempotency:lock:"+key).Err()
}

type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a successful request carrying
// the same Idempotency-Key and body. Keys are scoped to the browser session.
// Requests without the header pass through.
func Idempotency(store IdempotencyStore, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("idempotency")

	return func(c *gin.Context) {
		header := c.GetHeader(IdempotencyKeyHeader)
		if header == "" {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abort(c, apperror.New(apperror.CodeInvalidInput, "Unreadable request body", http.StatusBadRequest))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		sum := sha256.Sum256(body)
		hash := hex.EncodeToString(sum[:])
		key := CurrentSession(c).ID + ":" + header
		ctx := c.Request.Context()

		stored, err := store.Load(ctx, key)
		if err != nil {
			logger.Warn("idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}
		if stored != nil {
			if stored.RequestHash != hash {
				abort(c, ErrIdempotencyConflict)
				return
			}
			c.Header("Idempotent-Replayed", "true")
			c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
			c.Abort()
			return
		}

		locked, err := store.Lock(ctx, key)
		if err != nil {
			logger.Warn("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !locked {
			abort(c, ErrRequestInProgress)
			return
		}
		defer func() {
			if err := store.Unlock(context.WithoutCancel(ctx), key); err != nil {
				logger.Warn("idempotency unlock failed", zap.Error(err))
			}
		}()

		w := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		if err := store.Save(context.WithoutCancel(ctx), key, StoredResponse{
			RequestHash: hash,
			Status:      status,
			Body:        w.body.Bytes(),
		}); err != nil {
			logger.Warn("idempotency save failed", zap.Error(err))
		}
	}
}
