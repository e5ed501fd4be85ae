package wishlist

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one wishlisted product. Key is the product id for a guest and the
// server wishlist-item id for a signed-in shopper.
type Entry struct {
	Key             string          `json:"key"`
	ProductID       string          `json:"productId"`
	SpecificationID string          `json:"specificationId,omitempty"`
	Name            string          `json:"name"`
	Size            string          `json:"size,omitempty"`
	Color           string          `json:"color,omitempty"`
	ImageURL        string          `json:"imageUrl,omitempty"`
	Price           decimal.Decimal `json:"price"`
	AddedAt         time.Time       `json:"addedAt"`
}

// ==================== REQUEST STRUCTS ====================

type ItemRequest struct {
	ProductID       string `json:"productId" binding:"required"`
	SpecificationID string `json:"specificationId"`
	Size            string `json:"size"`
	Color           string `json:"color"`
}

// ==================== RESPONSE STRUCTS ====================

type WishlistResponse struct {
	Mode      string  `json:"mode"`
	Items     []Entry `json:"items"`
	ItemCount int     `json:"itemCount"`
}

type ToggleResponse struct {
	Added    bool             `json:"added"`
	Wishlist WishlistResponse `json:"wishlist"`
}

type CheckResponse struct {
	InWishlist        bool `json:"inWishlist"`
	ProductWishlisted bool `json:"productWishlisted"`
}
