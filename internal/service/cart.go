package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_api/internal/events"
	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/pricing"
	"github.com/Skotchmaster/shop_api/internal/repo"
	"github.com/Skotchmaster/shop_api/internal/transport"
)

type Cart struct {
	Items      []models.CartItem
	TotalPrice float64
}

type CartService struct {
	Repo      *repo.GormRepo
	Publisher events.Publisher
}

// GetCart prices every line at the product's current price.
func (s *CartService) GetCart(ctx context.Context, userID string) (*Cart, error) {
	items, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Cart{Items: items, TotalPrice: pricing.SumLineTotal(pricing.CartLines(items))}, nil
}

func (s *CartService) AddToCart(ctx context.Context, userID string, req transport.AddToCartRequest) (*Cart, error) {
	if req.ProductID == nil || *req.ProductID == 0 {
		return nil, fmt.Errorf("product_id required: %w", ErrValidation)
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	item := models.CartItem{UserID: userID, ProductID: *req.ProductID, Quantity: qty}
	if err := s.Repo.AddToCart(ctx, &item); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, ErrNotFound)
		}
		return nil, err
	}

	publish(ctx, s.Publisher, events.TopicCart, userID, events.New("cart_item_added", map[string]any{
		"userID":    userID,
		"productID": item.ProductID,
		"added":     qty,
		"quantity":  item.Quantity,
	}))

	return s.GetCart(ctx, userID)
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID string, productID uint) (*Cart, error) {
	if err := s.Repo.RemoveFromCart(ctx, userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %d: %w", productID, ErrNotFound)
		}
		return nil, err
	}

	publish(ctx, s.Publisher, events.TopicCart, userID, events.New("cart_item_removed", map[string]any{
		"userID":    userID,
		"productID": productID,
	}))

	return s.GetCart(ctx, userID)
}
