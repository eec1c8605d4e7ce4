package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/pricing"
)

type OrderLine struct {
	ProductID uint
	Quantity  int
}

// CreateOrder writes the order, every resolvable line and the snapshot total
// in one transaction. Lines whose product does not exist are skipped.
func (r *GormRepo) CreateOrder(ctx context.Context, userID string, lines []OrderLine) (*models.Order, error) {
	order := models.Order{
		UserID: userID,
		Status: models.OrderStatusPending,
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}

		for _, l := range lines {
			var p models.Product
			if err := tx.Where("id = ?", l.ProductID).First(&p).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: p.ID,
				Quantity:  l.Quantity,
			}
			if err := tx.Omit(clause.Associations).Create(&item).Error; err != nil {
				return err
			}
		}

		items := []models.OrderItem{}
		if err := tx.Preload("Product").Where("order_id = ?", order.ID).Order("id ASC").Find(&items).Error; err != nil {
			return err
		}
		order.Items = items

		order.TotalPrice = pricing.SumLineTotal(pricing.OrderLines(items))
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).Update("total_price", order.TotalPrice).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
