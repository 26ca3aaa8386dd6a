package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the server's handlers into the echo instance.
func RegisterRoutes(e *echo.Echo, s *Server) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	api := e.Group("/api/v1")

	api.GET("/cart", s.GetCart)
	api.POST("/cart/lines", s.AddCartLine)
	api.PATCH("/cart/lines/:lineId", s.UpdateCartLine)
	api.DELETE("/cart/lines/:lineId", s.RemoveCartLine)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/checkout", s.Checkout)

	api.GET("/orders", s.ListMyOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/admin/orders", s.ListOrders)
	api.PATCH("/admin/orders/:id/status", s.ChangeOrderStatus)
	api.DELETE("/admin/orders/:id", s.DeleteOrder)

	api.GET("/products/:id/stock", s.GetProductStock)
}
