package models

// StockStatus is the display label derived from a numeric stock level.
type StockStatus string

const (
	StockStatusIn  StockStatus = "in-stock"
	StockStatusLow StockStatus = "low-stock"
	StockStatusOut StockStatus = "out-of-stock"
)

// Product is one record of the catalog snapshot. The snapshot is loaded once
// at startup and never mutated afterwards; fields under "derived" are filled
// in by the catalog on load and are not present in the mock data files.
type Product struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	SalePrice   *float64       `json:"salePrice,omitempty"` // discounted price, < Price when present
	Category    string         `json:"category"`
	Subcategory string         `json:"subcategory,omitempty"`
	Image       string         `json:"image"`
	StockLevel  int            `json:"stockLevel"`
	SizeStock   map[string]int `json:"sizeStock,omitempty"` // per-size stock, clothing only

	// Derived fields.
	Images          []string    `json:"images,omitempty"`
	FullDescription string      `json:"fullDescription,omitempty"`
	StockStatus     StockStatus `json:"stockStatus,omitempty"`
	AgeRange        string      `json:"ageRange,omitempty"`
	Sizes           []string    `json:"sizes,omitempty"`
}

// UnitPrice is the price a buyer actually pays: the sale price when one is
// set, the regular price otherwise.
func (p Product) UnitPrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// AvailableStock sums the per-size stock when the product carries one,
// falling back to the flat stock level.
func (p Product) AvailableStock() int {
	if len(p.SizeStock) == 0 {
		return p.StockLevel
	}
	total := 0
	for _, n := range p.SizeStock {
		total += n
	}
	return total
}
