package cart_test

import (
	"testing"

	"go-clothing-store/internal/cart"
	"go-clothing-store/internal/coupon"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleLines() []cart.Line {
	return []cart.Line{
		{Key: cart.GuestKey("p1", "", ""), ProductID: "p1", Quantity: 2, UnitPrice: dec("20")},
		{Key: cart.GuestKey("p2", "", ""), ProductID: "p2", Quantity: 1, UnitPrice: dec("15")},
	}
}

func TestTotals_GuestScenario(t *testing.T) {
	lines := sampleLines()
	save10 := &coupon.Coupon{Code: "SAVE10", Type: coupon.Percentage, Value: dec("10")}

	assert.True(t, cart.GetTotalPrice(lines).Equal(dec("55")))
	assert.True(t, cart.GetDiscountAmount(lines, save10).Equal(dec("5.50")))
	assert.True(t, cart.GetFinalTotal(lines, save10).Equal(dec("49.50")))
}

func TestGetTotalPrice(t *testing.T) {
	t.Run("empty_cart", func(t *testing.T) {
		assert.True(t, cart.GetTotalPrice(nil).IsZero())
	})

	t.Run("ignores_non_positive_quantities", func(t *testing.T) {
		lines := append(sampleLines(), cart.Line{Quantity: 0, UnitPrice: dec("100")})
		assert.True(t, cart.GetTotalPrice(lines).Equal(dec("55")))
	})

	t.Run("no_coupon_means_no_discount", func(t *testing.T) {
		assert.True(t, cart.GetDiscountAmount(sampleLines(), nil).IsZero())
		assert.True(t, cart.GetFinalTotal(sampleLines(), nil).Equal(dec("55")))
	})

	t.Run("fixed_coupon_never_goes_negative", func(t *testing.T) {
		big := &coupon.Coupon{Type: coupon.Fixed, Value: dec("100")}
		assert.True(t, cart.GetFinalTotal(sampleLines(), big).IsZero())
	})
}

func TestComputeTotals(t *testing.T) {
	save10 := &coupon.Coupon{Type: coupon.Percentage, Value: dec("10")}

	t.Run("without_tax", func(t *testing.T) {
		got := cart.ComputeTotals(sampleLines(), save10, decimal.Zero)

		assert.True(t, got.Subtotal.Equal(dec("55")))
		assert.True(t, got.Discount.Equal(dec("5.5")))
		assert.True(t, got.Final.Equal(dec("49.5")))
		assert.True(t, got.Tax.IsZero())
		assert.True(t, got.GrandTotal.Equal(dec("49.5")))
	})

	t.Run("tax_on_discounted_total", func(t *testing.T) {
		got := cart.ComputeTotals(sampleLines(), save10, dec("0.11"))

		assert.True(t, got.Tax.Equal(dec("5.45")), "tax %s", got.Tax)
		assert.True(t, got.GrandTotal.Equal(dec("54.95")), "grand %s", got.GrandTotal)
	})

	t.Run("rounds_to_cents_for_display", func(t *testing.T) {
		lines := []cart.Line{{ProductID: "p1", Quantity: 1, UnitPrice: dec("19.99")}}
		save15 := &coupon.Coupon{Type: coupon.Percentage, Value: dec("15")}

		assert.True(t, cart.GetDiscountAmount(lines, save15).Equal(dec("2.9985")))

		got := cart.ComputeTotals(lines, save15, decimal.Zero)
		assert.True(t, got.Discount.Equal(dec("3")), "discount %s", got.Discount)
		assert.True(t, got.Final.Equal(dec("16.99")), "final %s", got.Final)
	})
}

func TestGuestKey(t *testing.T) {
	assert.Equal(t, cart.GuestKey("p1", " M ", "Red"), cart.GuestKey("p1", "m", "red"))
	assert.NotEqual(t, cart.GuestKey("p1", "M", "red"), cart.GuestKey("p1", "L", "red"))

	key := cart.GuestKey("p1", "M", "Black/White")
	assert.NotContains(t, key, "/")
	assert.NotEqual(t, key, cart.GuestKey("p1", "M", "Black"))
}
