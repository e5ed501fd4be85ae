package wishlist_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-clothing-store/internal/middleware"
	"go-clothing-store/internal/session"
	"go-clothing-store/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWishlistService struct {
	wishlist.Service
	ToggleFn func(ctx context.Context, sess session.Session, req wishlist.ItemRequest) (wishlist.ToggleResponse, error)
	CheckFn  func(ctx context.Context, sess session.Session, productID, specID string) (wishlist.CheckResponse, error)
	RemoveFn func(ctx context.Context, sess session.Session, key string) (wishlist.WishlistResponse, error)
}

func (f *fakeWishlistService) ToggleWishlist(ctx context.Context, sess session.Session, req wishlist.ItemRequest) (wishlist.ToggleResponse, error) {
	return f.ToggleFn(ctx, sess, req)
}

func (f *fakeWishlistService) Check(ctx context.Context, sess session.Session, productID, specID string) (wishlist.CheckResponse, error) {
	return f.CheckFn(ctx, sess, productID, specID)
}

func (f *fakeWishlistService) RemoveFromWishlist(ctx context.Context, sess session.Session, key string) (wishlist.WishlistResponse, error) {
	return f.RemoveFn(ctx, sess, key)
}

func setupRouter(svc wishlist.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, guestSession)
		c.Next()
	})
	wishlist.RegisterRoutes(r.Group("/api/v1"), wishlist.NewHandler(svc))
	return r
}

func TestWishlistHandler_Toggle(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeWishlistService{
			ToggleFn: func(_ context.Context, _ session.Session, req wishlist.ItemRequest) (wishlist.ToggleResponse, error) {
				assert.Equal(t, "p1", req.ProductID)
				return wishlist.ToggleResponse{Added: true}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", strings.NewReader(`{"productId":"p1"}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data wishlist.ToggleResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Data.Added)
	})

	t.Run("bad_body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(&fakeWishlistService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWishlistHandler_Check(t *testing.T) {
	t.Run("requires_product", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(&fakeWishlistService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/wishlist/check", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeWishlistService{
			CheckFn: func(_ context.Context, _ session.Session, productID, specID string) (wishlist.CheckResponse, error) {
				assert.Equal(t, "p1", productID)
				assert.Equal(t, "s1", specID)
				return wishlist.CheckResponse{InWishlist: true, ProductWishlisted: true}, nil
			},
		}

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/wishlist/check?productId=p1&specificationId=s1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestWishlistHandler_Delete(t *testing.T) {
	svc := &fakeWishlistService{
		RemoveFn: func(context.Context, session.Session, string) (wishlist.WishlistResponse, error) {
			return wishlist.WishlistResponse{}, wishlist.ErrItemNotFound
		},
	}

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/wishlist/items/p1", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
