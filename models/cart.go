package models

// CartItem is one line of the cart: a product snapshot plus the quantity and
// variant the shopper selected. The cart holds at most one line per product.
type CartItem struct {
	ProductID int     `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"` // unit price captured at add time
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}
