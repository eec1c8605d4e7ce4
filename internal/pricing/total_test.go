package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Skotchmaster/shop_api/internal/models"
)

func TestSumLineTotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line
		want  float64
	}{
		{name: "empty", lines: nil, want: 0},
		{name: "single line", lines: []Line{{UnitPrice: 9.99, Quantity: 2}}, want: 19.98},
		{name: "several lines", lines: []Line{{UnitPrice: 0.1, Quantity: 3}, {UnitPrice: 1.25, Quantity: 4}}, want: 5.3},
		{name: "zero quantity", lines: []Line{{UnitPrice: 100, Quantity: 0}}, want: 0},
		{name: "free product", lines: []Line{{UnitPrice: 0, Quantity: 7}}, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SumLineTotal(tt.lines))
		})
	}
}

func TestCartLines_UsesJoinedPrice(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Quantity: 2, Product: models.Product{ID: 1, Price: 3.5}},
		{ProductID: 2, Quantity: 5}, // dangling
	}

	lines := CartLines(items)
	assert.Equal(t, []Line{{UnitPrice: 3.5, Quantity: 2}, {UnitPrice: 0, Quantity: 5}}, lines)
	assert.Equal(t, 7.0, SumLineTotal(lines))
}

func TestOrderLines(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 2, Product: models.Product{ID: 1, Price: 9.99}},
		{ProductID: 3, Quantity: 1, Product: models.Product{ID: 3, Price: 0.02}},
	}

	assert.Equal(t, 20.0, SumLineTotal(OrderLines(items)))
}
