package review

import (
	"go-clothing-store/internal/apiclient"

	"github.com/shopspring/decimal"
)

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

type ProductReviewsResponse struct {
	Items         []apiclient.Review `json:"items"`
	Count         int                `json:"count"`
	AverageRating decimal.Decimal    `json:"average_rating"`
}
