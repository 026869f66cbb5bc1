package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/apper-canvas/kidsstyle-mall-deliberate/controllers/cart"
)

// SetupCartRoutes registers the shopping cart endpoints.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(deps.Cart))                          // GET /cart
		cartGroup.GET("/summary", cartControllers.GetCartSummary(deps.Cart))           // GET /cart/summary
		cartGroup.POST("", cartControllers.AddCartItem(deps.Catalog, deps.Cart))       // POST /cart
		cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(deps.Cart))       // PUT /cart/:product_id
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Cart))    // DELETE /cart/:product_id
		cartGroup.DELETE("", cartControllers.ClearCart(deps.Cart))                     // DELETE /cart
	}
}
