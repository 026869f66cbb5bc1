package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/apper-canvas/kidsstyle-mall-deliberate/controllers/order"
)

// SetupOrderRoutes registers checkout and the order endpoints.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	r.POST("/checkout", orderControllers.Checkout(deps.Orders, deps.Cart)) // POST /checkout

	orderGroup := r.Group("/orders")
	{
		orderGroup.GET("", orderControllers.GetOrders(deps.Orders))                    // GET /orders
		orderGroup.GET("/feed", orderControllers.OrderFeedHandler)                     // GET /orders/feed (websocket)
		orderGroup.GET("/:id", orderControllers.GetOrderByID(deps.Orders))             // GET /orders/:id
		orderGroup.PUT("/:id/status", orderControllers.UpdateOrderStatus(deps.Orders)) // PUT /orders/:id/status
	}
}
