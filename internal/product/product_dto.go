package product

import (
	"go-clothing-store/internal/apiclient"

	"github.com/shopspring/decimal"
)

// ProductForm is the multipart body of admin create/update. Price arrives as
// text so decimal places survive form encoding.
type ProductForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Stock       *int   `form:"stock"`
	CategoryID  string `form:"category_id"`
}

type CreateProductRequest struct {
	Name        string          `validate:"required,max=150"`
	Description string          `validate:"max=5000"`
	Price       decimal.Decimal `validate:"-"`
	Stock       int             `validate:"gte=0"`
	CategoryID  string          `validate:"required"`
}

// UpdateProductRequest carries only the fields the admin changed.
type UpdateProductRequest struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	CategoryID  *string
}

type SpecificationRequest struct {
	Size       string          `json:"size" binding:"required"`
	Color      string          `json:"color" binding:"required"`
	PriceDelta decimal.Decimal `json:"price"`
	Stock      int             `json:"stock" binding:"gte=0"`
}

// ProductDetailResponse is a product with its variants and the size/color
// choices a product page offers.
type ProductDetailResponse struct {
	apiclient.Product
	Specifications []apiclient.Specification `json:"specifications"`
	Sizes          []string                  `json:"sizes"`
	Colors         []string                  `json:"colors"`
	InStock        bool                      `json:"in_stock"`
}
