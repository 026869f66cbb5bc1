package cartControllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/cart"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/catalog"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/models"
)

type AddItemInput struct {
	ProductID int    `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type SetQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// AddCartItem validates the product and its stock, then merges the line into
// the cart. The container itself never checks stock; that happens here.
// POST /cart
func AddCartItem(cat *catalog.Store, ct *cart.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := cat.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		if msg, ok := checkStock(product, input.Size, input.Quantity); !ok {
			c.JSON(http.StatusConflict, gin.H{"error": msg})
			return
		}

		ct.AddItem(models.CartItem{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.UnitPrice(),
			Image:     product.Image,
			Quantity:  input.Quantity,
			Size:      input.Size,
			Color:     input.Color,
		})
		c.JSON(http.StatusCreated, ct.Items())
	}
}

// checkStock mirrors what the detail page enforces before adding: a size is
// required (and must be stocked) for clothing, the flat level applies
// otherwise.
func checkStock(product models.Product, size string, quantity int) (string, bool) {
	if product.StockStatus == models.StockStatusOut {
		return "This item is currently out of stock", false
	}
	if len(product.SizeStock) > 0 {
		if size == "" {
			return "Please select a size", false
		}
		stock := product.SizeStock[size]
		if stock == 0 {
			return fmt.Sprintf("Size %s is out of stock", size), false
		}
		if quantity > stock {
			return fmt.Sprintf("Only %d items available in size %s", stock, size), false
		}
		return "", true
	}
	if quantity > product.StockLevel {
		return fmt.Sprintf("Only %d items available", product.StockLevel), false
	}
	return "", true
}

// UpdateCartItem overwrites a line's quantity; zero removes the line.
// PUT /cart/:product_id
func UpdateCartItem(ct *cart.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if _, ok := ct.Item(productID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		ct.SetQuantity(productID, *input.Quantity)
		c.JSON(http.StatusOK, ct.Items())
	}
}

// DeleteCartItem removes a line from the cart.
// DELETE /cart/:product_id
func DeleteCartItem(ct *cart.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if _, ok := ct.Item(productID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		ct.RemoveItem(productID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// ClearCart empties the cart.
// DELETE /cart
func ClearCart(ct *cart.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GetCart returns the line items in insertion order.
// GET /cart
func GetCart(ct *cart.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ct.Items())
	}
}

// GetCartSummary returns the derived totals the header badge renders.
// GET /cart/summary
func GetCartSummary(ct *cart.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"totalItems": ct.TotalItemCount(),
			"subtotal":   ct.Subtotal(),
		})
	}
}
