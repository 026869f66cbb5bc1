package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/catalog"
)

const (
	defaultRelatedLimit       = 6
	defaultComplementaryLimit = 4
)

// GetRelatedProducts returns same-category, similar-price suggestions.
// GET /products/:id/related?limit=6
func GetRelatedProducts(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		if _, ok := cat.ByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, cat.Related(id, limitParam(c, defaultRelatedLimit)))
	}
}

// GetComplementaryProducts returns "frequently bought together" suggestions.
// GET /products/:id/complementary?limit=4
func GetComplementaryProducts(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		if _, ok := cat.ByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, cat.Complementary(id, limitParam(c, defaultComplementaryLimit)))
	}
}

func limitParam(c *gin.Context, fallback int) int {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
