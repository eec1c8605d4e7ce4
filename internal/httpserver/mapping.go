package httpserver

import (
	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/service"
	"github.com/Skotchmaster/shop_api/internal/transport"
)

func toProduct(p models.Product) transport.ProductResponse {
	return transport.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		InStock:     p.InStock,
	}
}

func toProducts(items []models.Product) []transport.ProductResponse {
	out := make([]transport.ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toProduct(p))
	}
	return out
}

// toOrder reads name and price from the joined product, so they reflect the
// product as it is now. A deleted product yields "" and 0.
func toOrder(o models.Order) transport.OrderResponse {
	items := make([]transport.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, transport.OrderItemResponse{
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			ProductName:  it.Product.Name,
			ProductPrice: it.Product.Price,
		})
	}
	return transport.OrderResponse{
		OrderID:    o.ID,
		UserID:     o.UserID,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
		Products:   items,
	}
}

func toCart(c *service.Cart) transport.CartResponse {
	items := make([]transport.CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, transport.CartItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.Product.Name,
			Quantity:    it.Quantity,
			PriceEach:   it.Product.Price,
		})
	}
	return transport.CartResponse{Cart: items, TotalPrice: c.TotalPrice}
}
