package recentControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/catalog"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/recent"
)

// GetRecentlyViewed returns the resolved products, most recent first.
// GET /recently-viewed
func GetRecentlyViewed(tracker *recent.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, tracker.Products())
	}
}

// TrackProductView records a product view explicitly (detail views are
// tracked automatically; this covers quick-view style interactions).
// POST /recently-viewed/:product_id
func TrackProductView(cat *catalog.Store, tracker *recent.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		if _, ok := cat.ByID(productID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		tracker.TrackView(productID)
		c.JSON(http.StatusOK, gin.H{"message": "View tracked"})
	}
}

// ClearRecentlyViewed wipes the view history.
// DELETE /recently-viewed
func ClearRecentlyViewed(tracker *recent.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tracker.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Recently viewed cleared"})
	}
}
