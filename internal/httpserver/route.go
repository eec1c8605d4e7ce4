package httpserver

import (
	"context"
	"embed"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_api/internal/db"
)

//go:embed static/index.html
var static embed.FS

type Deps struct {
	DB             *gorm.DB
	CatalogHandler *CatalogHTTP
	OrderHandler   *OrderHTTP
	CartHandler    *CartHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", d.ready)

	e.GET("/", func(c echo.Context) error {
		return echo.StaticFileHandler("static/index.html", static)(c)
	})

	products := e.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.POST("", d.CatalogHandler.CreateProduct)
	products.GET("/search", d.CatalogHandler.SearchProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)
	products.PUT("/:id", d.CatalogHandler.UpdateProduct)
	products.PATCH("/:id", d.CatalogHandler.UpdateProduct)
	products.DELETE("/:id", d.CatalogHandler.DeleteProduct)

	orders := e.Group("/orders")
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/:user_id", d.OrderHandler.GetOrders)

	cart := e.Group("/cart")
	cart.GET("/:user_id", d.CartHandler.GetCart)
	cart.POST("/:user_id", d.CartHandler.AddToCart)
	cart.DELETE("/:user_id/item/:product_id", d.CartHandler.RemoveFromCart)
}

func (d *Deps) ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := db.Ping(ctx, d.DB); err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
