package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/apper-canvas/kidsstyle-mall-deliberate/controllers/product"
	recentControllers "github.com/apper-canvas/kidsstyle-mall-deliberate/controllers/recent"
)

// SetupShopRoutes registers the browse endpoints: products, categories and
// the recently-viewed widget.
func SetupShopRoutes(r *gin.Engine, deps Deps) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(deps.Catalog))                            // GET /products
		products.GET("/export", productControllers.ExportProductsToExcel(deps.Catalog))          // GET /products/export
		products.GET("/:id", productControllers.GetProductByID(deps.Catalog, deps.Recent))       // GET /products/:id
		products.GET("/:id/related", productControllers.GetRelatedProducts(deps.Catalog))        // GET /products/:id/related
		products.GET("/:id/complementary", productControllers.GetComplementaryProducts(deps.Catalog)) // GET /products/:id/complementary
	}

	categories := r.Group("/categories")
	{
		categories.GET("", productControllers.GetCategories(deps.Catalog))                       // GET /categories
		categories.GET("/:name/subcategories", productControllers.GetSubcategories(deps.Catalog)) // GET /categories/:name/subcategories
	}

	recentGroup := r.Group("/recently-viewed")
	{
		recentGroup.GET("", recentControllers.GetRecentlyViewed(deps.Recent))                          // GET /recently-viewed
		recentGroup.POST("/:product_id", recentControllers.TrackProductView(deps.Catalog, deps.Recent)) // POST /recently-viewed/:product_id
		recentGroup.DELETE("", recentControllers.ClearRecentlyViewed(deps.Recent))                     // DELETE /recently-viewed
	}
}
