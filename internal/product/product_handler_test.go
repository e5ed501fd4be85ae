package product_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/middleware"
	productMock "go-clothing-store/internal/mock/product"
	"go-clothing-store/internal/product"
	"go-clothing-store/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupTestRouter(svc product.Service, sess session.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, sess)
		c.Next()
	})
	product.RegisterRoutes(r.Group("/api/v1"), product.NewHandler(svc))
	return r
}

func multipartBody(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withImage {
		part, err := w.CreateFormFile("image", "tee.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-image"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestHandler_GetPublicList(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := productMock.NewMockService(ctrl)
	r := setupTestRouter(svc, session.Session{ID: "sid"})

	svc.EXPECT().
		List(gomock.Any(), apiclient.ListParams{Page: 2, PerPage: 12, Search: "tee"}).
		Return(apiclient.ProductPage{
			Data: []apiclient.Product{{ID: "p-1"}},
			Meta: apiclient.PageMeta{CurrentPage: 2, PerPage: 12, Total: 13},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?page=2&search=tee", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Pagination struct {
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 2, env.Pagination.TotalPages)
}

func TestHandler_AdminCreate(t *testing.T) {
	t.Run("Anonymous Is Rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := productMock.NewMockService(ctrl)
		r := setupTestRouter(svc, session.Session{ID: "sid"})

		body, ct := multipartBody(t, map[string]string{"name": "Tee"}, false)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Customer Is Forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := productMock.NewMockService(ctrl)
		customer := session.Session{ID: "sid", Token: "tok", User: &session.User{ID: "u-1", Role: "customer"}}
		r := setupTestRouter(svc, customer)

		body, ct := multipartBody(t, map[string]string{"name": "Tee"}, false)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Success With Image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := productMock.NewMockService(ctrl)
		r := setupTestRouter(svc, admin)

		svc.EXPECT().
			Create(gomock.Any(), admin, gomock.Any(), gomock.Not(gomock.Nil()), "tee.jpg").
			DoAndReturn(func(_, _ any, req product.CreateProductRequest, _ multipart.File, _ string) (apiclient.Product, error) {
				assert.Equal(t, "Box Tee", req.Name)
				assert.Equal(t, 7, req.Stock)
				assert.True(t, req.Price.Equal(decimal.RequireFromString("24.50")))
				return apiclient.Product{ID: "p-1", Name: req.Name}, nil
			})

		body, ct := multipartBody(t, map[string]string{
			"name":        "Box Tee",
			"price":       "24.50",
			"stock":       "7",
			"category_id": "c-1",
		}, true)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Invalid Price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := productMock.NewMockService(ctrl)
		r := setupTestRouter(svc, admin)

		body, ct := multipartBody(t, map[string]string{"name": "Tee", "price": "abc", "category_id": "c-1"}, false)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
