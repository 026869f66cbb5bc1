package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/catalog"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/recent"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(cat *catalog.Store, tracker *recent.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, ok := cat.ByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		// A detail view counts as a product view.
		tracker.TrackView(product.ID)

		c.JSON(http.StatusOK, product)
	}
}
