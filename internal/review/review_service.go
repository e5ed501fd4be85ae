package review

import (
	"context"
	"strings"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/session"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=review_service.go -destination=../mock/review/review_service_mock.go -package=mock
type API interface {
	ListProductReviews(ctx context.Context, productID string) ([]apiclient.Review, error)
	ListReviews(ctx context.Context, token string) ([]apiclient.Review, error)
	CreateReview(ctx context.Context, token string, in apiclient.ReviewInput) (apiclient.Review, error)
	UpdateReview(ctx context.Context, token, id string, in apiclient.ReviewInput) (apiclient.Review, error)
	DeleteReview(ctx context.Context, token, id string) error
}

type Service interface {
	ListByProduct(ctx context.Context, productID string) (ProductReviewsResponse, error)
	ListMine(ctx context.Context, sess session.Session) ([]apiclient.Review, error)
	Create(ctx context.Context, sess session.Session, productID string, req ReviewRequest) (apiclient.Review, error)
	Update(ctx context.Context, sess session.Session, id string, req ReviewRequest) (apiclient.Review, error)
	Delete(ctx context.Context, sess session.Session, id string) error
}

type service struct {
	api API
}

func NewService(api API) Service {
	return &service{api: api}
}

func (s *service) ListByProduct(ctx context.Context, productID string) (ProductReviewsResponse, error) {
	items, err := s.api.ListProductReviews(ctx, productID)
	if err != nil {
		return ProductReviewsResponse{}, err
	}
	if items == nil {
		items = []apiclient.Review{}
	}

	return ProductReviewsResponse{
		Items:         items,
		Count:         len(items),
		AverageRating: averageRating(items),
	}, nil
}

// ListMine keeps only the caller's reviews; admins receive every review
// from the same endpoint.
func (s *service) ListMine(ctx context.Context, sess session.Session) ([]apiclient.Review, error) {
	items, err := s.api.ListReviews(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	mine := make([]apiclient.Review, 0, len(items))
	for _, r := range items {
		if r.UserID == sess.User.ID {
			mine = append(mine, r)
		}
	}
	return mine, nil
}

func (s *service) Create(ctx context.Context, sess session.Session, productID string, req ReviewRequest) (apiclient.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return apiclient.Review{}, ErrInvalidRating
	}

	r, err := s.api.CreateReview(ctx, sess.Token, apiclient.ReviewInput{
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
	})
	if apiclient.IsConflict(err) {
		return apiclient.Review{}, ErrAlreadyReviewed
	}
	return r, err
}

func (s *service) Update(ctx context.Context, sess session.Session, id string, req ReviewRequest) (apiclient.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return apiclient.Review{}, ErrInvalidRating
	}

	r, err := s.api.UpdateReview(ctx, sess.Token, id, apiclient.ReviewInput{
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	})
	if apiclient.IsNotFound(err) {
		return apiclient.Review{}, ErrReviewNotFound
	}
	return r, err
}

func (s *service) Delete(ctx context.Context, sess session.Session, id string) error {
	err := s.api.DeleteReview(ctx, sess.Token, id)
	if apiclient.IsNotFound(err) {
		return ErrReviewNotFound
	}
	return err
}

// averageRating is rounded to one decimal place, zero without reviews.
func averageRating(items []apiclient.Review) decimal.Decimal {
	if len(items) == 0 {
		return decimal.Zero
	}
	sum := 0
	for _, r := range items {
		sum += r.Rating
	}
	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(items)))).Round(1)
}
