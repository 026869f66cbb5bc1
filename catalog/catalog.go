// Package catalog holds the immutable product/category snapshot and answers
// read-only queries over it, including the related/complementary product
// derivations shown on detail pages.
package catalog

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/models"
)

const clothingCategory = "Kids Clothing"

var clothingSizes = []string{"XS", "S", "M", "L", "XL"}

// Store is the fixed catalog snapshot shared read-only by every other
// component. It is loaded once at startup and never mutated afterwards.
type Store struct {
	products   []models.Product
	byID       map[int]int // product id -> index into products
	categories []models.Category

	mu  sync.Mutex // guards rng
	rng *rand.Rand

	latency bool
}

type Option func(*Store)

// WithSeed pins the recommendation shuffle to a fixed seed. Without it the
// ordering is intentionally different on every call.
func WithSeed(seed int64) Option {
	return func(s *Store) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithSimulatedLatency makes every query sleep 200-500ms before answering,
// mimicking a remote catalog so loading states can be exercised.
func WithSimulatedLatency() Option {
	return func(s *Store) { s.latency = true }
}

// Load parses the product and category snapshots and derives the display
// fields (image set, stock status, age range, sizes) for every product.
func Load(productsJSON, categoriesJSON []byte, opts ...Option) (*Store, error) {
	s := &Store{
		byID: make(map[int]int),
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := json.Unmarshal(productsJSON, &s.products); err != nil {
		return nil, fmt.Errorf("parse products: %w", err)
	}
	if err := json.Unmarshal(categoriesJSON, &s.categories); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}

	for i := range s.products {
		enhance(&s.products[i])
		if _, dup := s.byID[s.products[i].ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", s.products[i].ID)
		}
		s.byID[s.products[i].ID] = i
	}
	return s, nil
}

// enhance fills in the derived display fields on a freshly loaded product.
func enhance(p *models.Product) {
	ext := path.Ext(p.Image)
	stem := strings.TrimSuffix(p.Image, ext)
	p.Images = []string{
		p.Image,
		stem + "-2" + ext,
		stem + "-3" + ext,
		stem + "-4" + ext,
	}

	p.FullDescription = fmt.Sprintf(
		"%s This high-quality %s item is perfect for kids and families. Made with care and attention to detail, it offers great value and lasting durability. Ideal for everyday use or special occasions, this product combines style, comfort, and functionality in one package.",
		p.Description, strings.ToLower(p.Category),
	)

	p.StockStatus = stockStatus(p.AvailableStock())

	switch {
	case p.Subcategory != "":
		p.AgeRange = p.Subcategory
	case p.Category == "Toys":
		p.AgeRange = "3-8 years"
	case p.Category == clothingCategory:
		p.AgeRange = "2-12 years"
	default:
		p.AgeRange = "All ages"
	}

	if p.Category == clothingCategory {
		p.Sizes = clothingSizes
	}
}

func stockStatus(level int) models.StockStatus {
	switch {
	case level > 5:
		return models.StockStatusIn
	case level >= 1:
		return models.StockStatusLow
	default:
		return models.StockStatusOut
	}
}

// Filter narrows All. Zero values match everything; the category
// "All Products" is treated the same as no category.
type Filter struct {
	Category    string
	Subcategory string
	Query       string // case-insensitive substring over title, category, description
}

func (f Filter) matches(p models.Product) bool {
	if f.Category != "" && f.Category != "All Products" && p.Category != f.Category {
		return false
	}
	if f.Subcategory != "" && p.Subcategory != f.Subcategory {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}

// All returns every product matching the filter, in snapshot order.
func (s *Store) All(f Filter) []models.Product {
	s.pause()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// ByID looks up a single product. The second return is false when the id is
// unknown; callers are expected to render a not-found state.
func (s *Store) ByID(id int) (models.Product, bool) {
	s.pause()
	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}

// Search matches term case-insensitively against title, category and
// description. An empty term matches everything.
func (s *Store) Search(term string) []models.Product {
	return s.All(Filter{Query: term})
}

// pause sleeps a random 200-500ms when simulated latency is on.
func (s *Store) pause() {
	if !s.latency {
		return
	}
	s.mu.Lock()
	d := 200 + time.Duration(s.rng.Intn(300))
	s.mu.Unlock()
	time.Sleep(d * time.Millisecond)
}

func (s *Store) shuffle(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})
}
