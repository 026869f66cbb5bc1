package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/catalog"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/models"
)

// GetCategories returns every category with its product count.
func GetCategories(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts := cat.ProductCounts()

		type categoryView struct {
			ID            int                  `json:"id"`
			Name          string               `json:"name"`
			Icon          string               `json:"icon,omitempty"`
			Subcategories []models.Subcategory `json:"subcategories,omitempty"`
			ProductCount  int                  `json:"productCount"`
		}

		categories := cat.Categories()
		out := make([]categoryView, 0, len(categories))
		for _, catRec := range categories {
			out = append(out, categoryView{
				ID:            catRec.ID,
				Name:          catRec.Name,
				Icon:          catRec.Icon,
				Subcategories: catRec.Subcategories,
				ProductCount:  counts[catRec.Name],
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetSubcategories lists the subcategories of one category.
// GET /categories/:name/subcategories
func GetSubcategories(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if _, ok := cat.CategoryByName(name); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, cat.Subcategories(name))
	}
}
