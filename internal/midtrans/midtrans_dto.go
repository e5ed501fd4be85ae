package midtrans

type CreateTransactionRequest struct {
	OrderID     string           `json:"orderId"`
	GrossAmount int64            `json:"grossAmount"`
	Customer    *CustomerDetails `json:"customer"`
	Items       []ItemDetail     `json:"items"`
}

type CustomerDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ItemDetail struct {
	ID    string `json:"id"`
	Price int64  `json:"price"`
	Qty   int32  `json:"qty"`
	Name  string `json:"name"`
}

type CreateTransactionResponse struct {
	Token       string `json:"snapToken"`
	RedirectURL string `json:"redirectUrl"`
}

// Notification is the HTTP notification Midtrans posts after a payment
// changes state.
type Notification struct {
	OrderID           string `json:"order_id" binding:"required"`
	StatusCode        string `json:"status_code" binding:"required"`
	GrossAmount       string `json:"gross_amount" binding:"required"`
	SignatureKey      string `json:"signature_key" binding:"required"`
	TransactionStatus string `json:"transaction_status" binding:"required"`
	TransactionID     string `json:"transaction_id"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
}
