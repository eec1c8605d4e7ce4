package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/shop_api/internal/events"
	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/repo"
	"github.com/Skotchmaster/shop_api/internal/transport"
)

type OrderService struct {
	Repo      *repo.GormRepo
	Publisher events.Publisher
}

// CreateOrder requires a user id and at least one product entry. Entries
// whose product cannot be resolved are dropped without error; the stored
// total covers only the resolved ones and is not refreshed later.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if req.UserID == "" || len(req.Products) == 0 {
		return nil, fmt.Errorf("%w: user_id and products required", ErrValidation)
	}

	lines := make([]repo.OrderLine, 0, len(req.Products))
	for _, p := range req.Products {
		if p.ProductID == nil {
			continue
		}
		qty := 1
		if p.Quantity != nil {
			qty = *p.Quantity
		}
		lines = append(lines, repo.OrderLine{ProductID: *p.ProductID, Quantity: qty})
	}

	order, err := s.Repo.CreateOrder(ctx, req.UserID, lines)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]any, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, map[string]any{"productID": it.ProductID, "quantity": it.Quantity})
	}
	publish(ctx, s.Publisher, events.TopicOrder, order.UserID, events.New("order_created", map[string]any{
		"orderID":     order.ID,
		"userID":      order.UserID,
		"status":      order.Status,
		"total_price": order.TotalPrice,
		"items":       items,
	}))

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, userID)
}
