package review_test

import (
	"context"
	"net/http"
	"testing"

	"go-clothing-store/internal/apiclient"
	reviewMock "go-clothing-store/internal/mock/review"
	"go-clothing-store/internal/review"
	"go-clothing-store/internal/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var shopper = session.Session{ID: "sid", Token: "tok", User: &session.User{ID: "u-1"}}

func setupService(t *testing.T) (review.Service, *reviewMock.MockAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := reviewMock.NewMockAPI(ctrl)
	return review.NewService(api), api
}

func TestService_ListByProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Average Rating", func(t *testing.T) {
		svc, api := setupService(t)
		api.EXPECT().ListProductReviews(ctx, "p-1").Return([]apiclient.Review{
			{ID: "r-1", Rating: 5},
			{ID: "r-2", Rating: 4},
			{ID: "r-3", Rating: 4},
		}, nil)

		res, err := svc.ListByProduct(ctx, "p-1")

		require.NoError(t, err)
		assert.Equal(t, 3, res.Count)
		assert.True(t, res.AverageRating.Equal(decimal.RequireFromString("4.3")), res.AverageRating.String())
	})

	t.Run("No Reviews", func(t *testing.T) {
		svc, api := setupService(t)
		api.EXPECT().ListProductReviews(ctx, "p-2").Return(nil, nil)

		res, err := svc.ListByProduct(ctx, "p-2")

		require.NoError(t, err)
		assert.Equal(t, 0, res.Count)
		assert.NotNil(t, res.Items)
		assert.True(t, res.AverageRating.IsZero())
	})
}

func TestService_ListMine(t *testing.T) {
	svc, api := setupService(t)
	ctx := context.Background()
	api.EXPECT().ListReviews(ctx, "tok").Return([]apiclient.Review{
		{ID: "r-1", UserID: "u-1"},
		{ID: "r-2", UserID: "u-2"},
	}, nil)

	mine, err := svc.ListMine(ctx, shopper)

	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "r-1", mine[0].ID)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, api := setupService(t)
		api.EXPECT().
			CreateReview(ctx, "tok", apiclient.ReviewInput{ProductID: "p-1", Rating: 5, Comment: "Fits well"}).
			Return(apiclient.Review{ID: "r-1"}, nil)

		r, err := svc.Create(ctx, shopper, "p-1", review.ReviewRequest{Rating: 5, Comment: " Fits well "})

		require.NoError(t, err)
		assert.Equal(t, "r-1", r.ID)
	})

	t.Run("Duplicate", func(t *testing.T) {
		svc, api := setupService(t)
		api.EXPECT().CreateReview(ctx, "tok", gomock.Any()).
			Return(apiclient.Review{}, &apiclient.APIError{Status: http.StatusConflict})

		_, err := svc.Create(ctx, shopper, "p-1", review.ReviewRequest{Rating: 3})

		assert.ErrorIs(t, err, review.ErrAlreadyReviewed)
	})

	t.Run("Rating Out Of Range", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Create(ctx, shopper, "p-1", review.ReviewRequest{Rating: 6})

		assert.ErrorIs(t, err, review.ErrInvalidRating)
	})
}
