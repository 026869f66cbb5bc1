package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/cart"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/models"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/orders"
)

// -------- Request Structs --------

type AddressInput struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required"`
	Country string `json:"country" binding:"required"`
}

type CheckoutRequest struct {
	RequestID     string       `json:"request_id"` // optional; replaying it returns the original order
	CustomerName  string       `json:"customer_name" binding:"required"`
	Email         string       `json:"email" binding:"required,email"`
	Phone         string       `json:"phone" binding:"required"`
	Address       AddressInput `json:"shipping_address" binding:"required"`
	PaymentMethod string       `json:"payment_method" binding:"required"` // e.g. "card", "cod"
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Checkout validates the shipping form, snapshots the cart into an order and
// clears the cart on success. This is the whole of form validation; the
// order service itself assumes validated input.
// POST /checkout
func Checkout(svc *orders.Service, ct *cart.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		items := ct.Items()
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		if req.RequestID == "" {
			req.RequestID = uuid.NewString()
		}

		order, err := svc.Submit(orders.SubmitRequest{
			RequestID: req.RequestID,
			Items:     items,
			Shipping: models.ShippingInfo{
				CustomerName: req.CustomerName,
				Email:        req.Email,
				Phone:        req.Phone,
				Address: models.ShippingAddress{
					Street:  req.Address.Street,
					City:    req.Address.City,
					State:   req.Address.State,
					ZipCode: req.Address.ZipCode,
					Country: req.Address.Country,
				},
			},
			PaymentMethod: req.PaymentMethod,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		ct.Clear()
		broadcastOrderEvent(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GetOrders lists orders, optionally filtered.
// GET /orders?email=...  GET /orders?status=pending
func GetOrders(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if email := c.Query("email"); email != "" {
			c.JSON(http.StatusOK, svc.ByEmail(email))
			return
		}
		if raw := c.Query("status"); raw != "" {
			status, err := orders.ParseStatus(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, svc.ByStatus(status))
			return
		}
		c.JSON(http.StatusOK, svc.All())
	}
}

// GetOrderByID returns one order.
// GET /orders/:id
func GetOrderByID(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		order, err := svc.ByID(id)
		switch {
		case errors.Is(err, orders.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, orders.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		default:
			c.JSON(http.StatusOK, order)
		}
	}
}

// UpdateOrderStatus moves an order through the demo fulfilment flow.
// PUT /orders/:id/status
func UpdateOrderStatus(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := svc.UpdateStatus(id, req.Status)
		switch {
		case errors.Is(err, orders.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, orders.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			broadcastOrderEvent(order)
			c.JSON(http.StatusOK, order)
		}
	}
}
