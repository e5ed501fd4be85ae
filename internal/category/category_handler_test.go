package category_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/category"
	"go-clothing-store/internal/middleware"
	categoryMock "go-clothing-store/internal/mock/category"
	"go-clothing-store/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupTestRouter(svc category.Service, sess session.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, sess)
		c.Next()
	})
	category.RegisterRoutes(r.Group("/api/v1"), category.NewHandler(svc))
	return r
}

func TestHandler_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := categoryMock.NewMockService(ctrl)
	r := setupTestRouter(svc, session.Session{ID: "sid"})

	svc.EXPECT().GetByID(gomock.Any(), "c-x").Return(apiclient.Category{}, category.ErrCategoryNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/categories/c-x", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := categoryMock.NewMockService(ctrl)
	r := setupTestRouter(svc, admin)

	svc.EXPECT().
		Create(gomock.Any(), admin, category.CategoryRequest{Name: "Denim"}).
		Return(apiclient.Category{ID: "c-2", Name: "Denim"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/categories", strings.NewReader(`{"name":"Denim"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
