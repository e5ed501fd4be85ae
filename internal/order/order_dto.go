package order

import (
	"go-clothing-store/internal/apiclient"
)

const (
	StatusPending    = "pending"
	StatusPaid       = "paid"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"

	PaymentBalance  = "balance"
	PaymentMidtrans = "midtrans"
)

// ==================== REQUEST STRUCTS ====================

type CheckoutRequest struct {
	PaymentMethod   string `json:"paymentMethod" binding:"required" validate:"required,oneof=balance midtrans"`
	ShippingAddress string `json:"shippingAddress" binding:"required" validate:"required,min=5,max=500"`
	Notes           string `json:"notes" validate:"max=500"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type PaymentResponse struct {
	Method      string `json:"method"`
	Status      string `json:"status"`
	PaymentID   string `json:"paymentId,omitempty"`
	SnapToken   string `json:"snapToken,omitempty"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

type CheckoutResponse struct {
	Order   apiclient.Order `json:"order"`
	Payment PaymentResponse `json:"payment"`
}

type OrderDetailResponse struct {
	apiclient.Order
	Specifications []apiclient.OrderSpecification `json:"specifications"`
}
