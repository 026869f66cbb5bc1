package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/catalog"
)

// GetProducts lists the catalog, narrowed by optional query params:
// GET /products?category=Toys&subcategory=Building+Sets&search=blocks
func GetProducts(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.Filter{
			Category:    c.Query("category"),
			Subcategory: c.Query("subcategory"),
			Query:       c.Query("search"),
		}
		c.JSON(http.StatusOK, cat.All(filter))
	}
}
