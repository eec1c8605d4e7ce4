// Package pricing sums line items. Arithmetic is done in decimal so that
// 9.99 × 2 is 19.98 and not 19.980000000000004.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/shop_api/internal/models"
)

type Line struct {
	UnitPrice float64
	Quantity  int
}

// SumLineTotal returns Σ UnitPrice × Quantity; an empty slice sums to 0.
func SumLineTotal(lines []Line) float64 {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromFloat(l.UnitPrice).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total.InexactFloat64()
}

// CartLines uses the joined product's current price. A dangling reference
// (product deleted) carries a zero Product and contributes nothing.
func CartLines(items []models.CartItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{UnitPrice: it.Product.Price, Quantity: it.Quantity})
	}
	return lines
}

func OrderLines(items []models.OrderItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{UnitPrice: it.Product.Price, Quantity: it.Quantity})
	}
	return lines
}
