package category_test

import (
	"context"
	"net/http"
	"testing"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/category"
	categoryMock "go-clothing-store/internal/mock/category"
	"go-clothing-store/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var admin = session.Session{ID: "sid", Token: "tok", User: &session.User{ID: "u-a", Role: "admin"}}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := categoryMock.NewMockAPI(ctrl)
	svc := category.NewService(api)
	ctx := context.Background()

	api.EXPECT().ListCategories(ctx).Return(nil, nil)

	cats, err := svc.List(ctx)

	require.NoError(t, err)
	assert.NotNil(t, cats)
	assert.Empty(t, cats)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Trims Input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := categoryMock.NewMockAPI(ctrl)
		svc := category.NewService(api)

		api.EXPECT().
			CreateCategory(ctx, "tok", apiclient.CategoryInput{Name: "Outerwear", Description: "Coats"}).
			Return(apiclient.Category{ID: "c-1", Name: "Outerwear"}, nil)

		cat, err := svc.Create(ctx, admin, category.CategoryRequest{Name: " Outerwear ", Description: "Coats "})

		require.NoError(t, err)
		assert.Equal(t, "c-1", cat.ID)
	})

	t.Run("Blank Name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := category.NewService(categoryMock.NewMockAPI(ctrl))

		_, err := svc.Create(ctx, admin, category.CategoryRequest{Name: "   "})

		assert.ErrorIs(t, err, category.ErrCategoryNameRequired)
	})
}

func TestService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := categoryMock.NewMockAPI(ctrl)
	svc := category.NewService(api)
	ctx := context.Background()

	api.EXPECT().DeleteCategory(ctx, "tok", "c-x").Return(&apiclient.APIError{Status: http.StatusNotFound})

	assert.ErrorIs(t, svc.Delete(ctx, admin, "c-x"), category.ErrCategoryNotFound)
}
