package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
)

// Event types emitted by the storefront.
const (
	EventCartItemAdded     = "cart.item_added"
	EventCartItemUpdated   = "cart.item_updated"
	EventCartItemRemoved   = "cart.item_removed"
	EventCartCleared       = "cart.cleared"
	EventCouponApplied     = "cart.coupon_applied"
	EventCouponRemoved     = "cart.coupon_removed"
	EventWishlistAdded     = "wishlist.item_added"
	EventWishlistRemoved   = "wishlist.item_removed"
	EventSessionSignedIn   = "session.signed_in"
	EventSessionSignedOut  = "session.signed_out"
	EventSessionExpired    = "session.expired"
	EventOrderPlaced       = "order.placed"
	EventOrderCancelled    = "order.cancelled"
	EventOrderPaid         = "order.paid"
	EventOrderStatusSet    = "order.status_changed"
	EventRechargeRequested = "account.recharge_requested"
	AggregateCart          = "cart"
	AggregateWishlist      = "wishlist"
	AggregateSession       = "session"
	AggregateOrder         = "order"
	AggregateAccount       = "account"
)

type Event struct {
	ID            uuid.UUID       `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	Status        string          `json:"status"`
	Attempts      int             `json:"attempts"`
	CreatedAt     time.Time       `json:"created_at"`
}
