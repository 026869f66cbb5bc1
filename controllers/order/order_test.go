package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/cart"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/models"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/orders"
)

type memKV struct {
	m map[string]string
}

func newMemKV() *memKV { return &memKV{m: map[string]string{}} }

func (k *memKV) Get(key string) (string, bool) { v, ok := k.m[key]; return v, ok }
func (k *memKV) Set(key, value string) error   { k.m[key] = value; return nil }
func (k *memKV) Delete(key string) error       { delete(k.m, key); return nil }

const validCheckout = `{
  "customer_name": "Maya Thompson",
  "email": "maya@example.com",
  "phone": "+1 555 0134",
  "payment_method": "card",
  "shipping_address": {
    "street": "18 Birchwood Lane",
    "city": "Portland",
    "state": "OR",
    "zip_code": "97209",
    "country": "USA"
  }
}`

func setupRouter(t *testing.T) (*gin.Engine, *cart.Container, *orders.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := orders.NewService(nil)
	require.NoError(t, err)
	ct := cart.New(newMemKV())

	r := gin.New()
	r.POST("/checkout", Checkout(svc, ct))
	r.GET("/orders", GetOrders(svc))
	r.GET("/orders/:id", GetOrderByID(svc))
	r.PUT("/orders/:id/status", UpdateOrderStatus(svc))
	return r, ct, svc
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckout(t *testing.T) {
	r, ct, _ := setupRouter(t)
	ct.AddItem(models.CartItem{ProductID: 1, Title: "Tee", Price: 25.00, Quantity: 2})

	w := doJSON(r, http.MethodPost, "/checkout", validCheckout)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 1, order.ID)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.InDelta(t, 50.00, order.Subtotal, 1e-9)
	assert.InDelta(t, 9.99, order.Shipping, 1e-9)
	assert.InDelta(t, 4.00, order.Tax, 1e-9)
	assert.InDelta(t, 63.99, order.Total, 1e-9)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// A successful checkout clears the cart.
	assert.Empty(t, ct.Items())
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/checkout", validCheckout)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutValidatesForm(t *testing.T) {
	r, ct, svc := setupRouter(t)
	ct.AddItem(models.CartItem{ProductID: 1, Price: 10.00, Quantity: 1})

	cases := []struct {
		name string
		body string
	}{
		{"missing body", `{}`},
		{"missing email", `{"customer_name":"A","phone":"1","payment_method":"card","shipping_address":{"street":"s","city":"c","state":"st","zip_code":"z","country":"co"}}`},
		{"bad email", `{"customer_name":"A","email":"not-an-email","phone":"1","payment_method":"card","shipping_address":{"street":"s","city":"c","state":"st","zip_code":"z","country":"co"}}`},
		{"missing address field", `{"customer_name":"A","email":"a@example.com","phone":"1","payment_method":"card","shipping_address":{"street":"s","city":"c","state":"st","zip_code":"z"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/checkout", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// Rejected checkouts never reach the order list or touch the cart.
	assert.Empty(t, svc.All())
	assert.Len(t, ct.Items(), 1)
}

func TestGetOrderByID(t *testing.T) {
	r, ct, _ := setupRouter(t)
	ct.AddItem(models.CartItem{ProductID: 1, Price: 10.00, Quantity: 1})
	doJSON(r, http.MethodPost, "/checkout", validCheckout)

	w := doJSON(r, http.MethodGet, "/orders/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/orders/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/orders/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/orders/-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	r, ct, svc := setupRouter(t)
	ct.AddItem(models.CartItem{ProductID: 1, Price: 10.00, Quantity: 1})
	doJSON(r, http.MethodPost, "/checkout", validCheckout)

	w := doJSON(r, http.MethodPut, "/orders/1/status", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	order, err := svc.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)

	w = doJSON(r, http.MethodPut, "/orders/1/status", `{"status":"teleported"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/orders/99/status", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrdersFilters(t *testing.T) {
	r, ct, _ := setupRouter(t)
	ct.AddItem(models.CartItem{ProductID: 1, Price: 10.00, Quantity: 1})
	doJSON(r, http.MethodPost, "/checkout", validCheckout)

	w := doJSON(r, http.MethodGet, "/orders?email=maya@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	var byEmail []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &byEmail))
	assert.Len(t, byEmail, 1)

	w = doJSON(r, http.MethodGet, "/orders?status=pending", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/orders?status=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
