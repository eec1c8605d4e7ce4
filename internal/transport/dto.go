package transport

// CreateProductRequest keeps pointers so that absent fields can take their
// defaults (price 0, in_stock true, strings empty).
type CreateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"in_stock"`
}

// PatchProductRequest: nil means "keep the stored value". An explicit
// "in_stock": false is non-nil and is applied.
type PatchProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"in_stock"`
}

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"in_stock"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreateOrderItem struct {
	ProductID *uint `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID   string            `json:"user_id"`
	Products []CreateOrderItem `json:"products"`
}

type OrderItemResponse struct {
	ProductID    uint    `json:"product_id"`
	Quantity     int     `json:"quantity"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
}

type OrderResponse struct {
	OrderID    uint                `json:"order_id"`
	UserID     string              `json:"user_id"`
	Status     string              `json:"status"`
	TotalPrice float64             `json:"total_price"`
	Products   []OrderItemResponse `json:"products"`
}

type AddToCartRequest struct {
	ProductID *uint `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

type CartItemResponse struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	PriceEach   float64 `json:"price_each"`
}

type CartResponse struct {
	Cart       []CartItemResponse `json:"cart"`
	TotalPrice float64            `json:"total_price"`
}
