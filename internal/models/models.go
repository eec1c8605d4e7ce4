package models

const OrderStatusPending = "pending"

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string  `gorm:"size:100;not null"         json:"name"`
	Description string  `gorm:"size:255"                  json:"description"`
	Price       float64 `gorm:"not null"                  json:"price"`
	Category    string  `gorm:"size:50;index"             json:"category"`
	InStock     bool    `gorm:"not null"                  json:"in_stock"`
}

func (Product) TableName() string {
	return "products"
}

// Order.TotalPrice is written once at creation and never recomputed.
type Order struct {
	ID         uint        `gorm:"primaryKey;autoIncrement"        json:"id"`
	UserID     string      `gorm:"size:50;index;not null"          json:"user_id"`
	Status     string      `gorm:"size:50;not null;default:pending" json:"status"`
	TotalPrice float64     `gorm:"not null;default:0"              json:"total_price"`
	Items      []OrderItem `gorm:"foreignKey:OrderID"              json:"items"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index;not null"           json:"order_id"`
	ProductID uint    `gorm:"index;not null"           json:"product_id"`
	Quantity  int     `gorm:"not null"                 json:"quantity"`
	Product   Product `gorm:"foreignKey:ProductID"     json:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"                       json:"id"`
	UserID    string  `gorm:"size:50;uniqueIndex:idx_user_product;not null"  json:"user_id"`
	ProductID uint    `gorm:"uniqueIndex:idx_user_product;not null"          json:"product_id"`
	Quantity  int     `gorm:"not null"                                       json:"quantity"`
	Product   Product `gorm:"foreignKey:ProductID"                           json:"-"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// All lists every model in migration order.
func All() []any {
	return []any{&Product{}, &Order{}, &OrderItem{}, &CartItem{}}
}
