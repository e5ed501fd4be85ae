package cart

import (
	"go-clothing-store/internal/coupon"

	"github.com/shopspring/decimal"
)

// GetTotalPrice sums unit price times quantity over lines with a positive
// quantity.
func GetTotalPrice(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		total = total.Add(l.Total())
	}
	return total
}

func GetDiscountAmount(lines []Line, c *coupon.Coupon) decimal.Decimal {
	return c.Discount(GetTotalPrice(lines))
}

func GetFinalTotal(lines []Line, c *coupon.Coupon) decimal.Decimal {
	subtotal := GetTotalPrice(lines)
	return coupon.FinalTotal(subtotal, c.Discount(subtotal))
}

// ComputeTotals derives every amount shown at checkout. Tax applies to the
// discounted total. Amounts are computed exactly and rounded to cents only
// here, where they are displayed.
func ComputeTotals(lines []Line, c *coupon.Coupon, taxRate decimal.Decimal) Totals {
	subtotal := GetTotalPrice(lines)
	discount := c.Discount(subtotal)
	final := coupon.FinalTotal(subtotal, discount)
	tax := final.Mul(taxRate)

	return Totals{
		Subtotal:   subtotal.Round(2),
		Discount:   discount.Round(2),
		Final:      final.Round(2),
		Tax:        tax.Round(2),
		GrandTotal: final.Add(tax).Round(2),
	}
}

func unitCount(lines []Line) int {
	n := 0
	for _, l := range lines {
		if l.Quantity > 0 {
			n += l.Quantity
		}
	}
	return n
}
