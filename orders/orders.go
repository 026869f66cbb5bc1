// Package orders turns cart snapshots into order records. Orders live in an
// in-memory append-only list seeded from mock data; this is a demonstration
// checkout, no payment is ever authorized.
package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/models"
)

const (
	flatShippingFee = 9.99
	taxRate         = 0.08
)

var (
	ErrNotFound  = errors.New("order not found")
	ErrInvalidID = errors.New("invalid order id")
)

// Service owns the order list. Orders are immutable once created except for
// explicit status updates; ids are sequential and never reused.
type Service struct {
	mu        sync.Mutex
	orders    []models.Order
	nextID    int
	byRequest map[string]int // checkout request id -> order id, for replay protection

	now     func() time.Time
	latency bool
	rng     *rand.Rand
}

type Option func(*Service)

// WithClock fixes the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSimulatedLatency makes every operation sleep 200-500ms first.
func WithSimulatedLatency() Option {
	return func(s *Service) { s.latency = true }
}

// NewService seeds the order list from JSON (may be nil for an empty list).
func NewService(seedJSON []byte, opts ...Option) (*Service, error) {
	s := &Service{
		nextID:    1,
		byRequest: make(map[string]int),
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(seedJSON) > 0 {
		if err := json.Unmarshal(seedJSON, &s.orders); err != nil {
			return nil, fmt.Errorf("parse orders: %w", err)
		}
		for _, o := range s.orders {
			if o.ID >= s.nextID {
				s.nextID = o.ID + 1
			}
		}
	}
	return s, nil
}

// SubmitRequest carries everything checkout needs: the cart snapshot, the
// validated shipping form and the payment method tag. RequestID, when set,
// makes the submission idempotent: replaying the same id returns the order
// created the first time instead of creating a second one.
type SubmitRequest struct {
	RequestID     string
	Items         []models.CartItem
	Shipping      models.ShippingInfo
	PaymentMethod string
}

// Submit computes totals, assigns the next id and a time-derived order
// number, stores the record and returns it. Input is assumed validated; on
// success the caller is expected to clear the cart.
func (s *Service) Submit(req SubmitRequest) (models.Order, error) {
	s.pause()
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.RequestID != "" {
		if id, seen := s.byRequest[req.RequestID]; seen {
			if o, ok := s.find(id); ok {
				return o, nil
			}
		}
	}

	subtotal := 0.0
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		subtotal += line.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Title:     line.Title,
			Price:     line.Price,
			Image:     line.Image,
			Quantity:  line.Quantity,
			Size:      line.Size,
			Color:     line.Color,
		})
	}

	shipping := 0.0
	if len(items) > 0 {
		shipping = flatShippingFee
	}
	subtotal = roundCents(subtotal)
	tax := roundCents(subtotal * taxRate)

	now := s.now()
	order := models.Order{
		ID:              s.nextID,
		OrderNumber:     fmt.Sprintf("ORD-%d", now.UnixMilli()),
		CustomerName:    req.Shipping.CustomerName,
		Email:           req.Shipping.Email,
		Phone:           req.Shipping.Phone,
		ShippingAddress: req.Shipping.Address,
		Items:           items,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Total:           roundCents(subtotal + shipping + tax),
		PaymentMethod:   req.PaymentMethod,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
	}
	s.nextID++
	s.orders = append(s.orders, order)
	if req.RequestID != "" {
		s.byRequest[req.RequestID] = order.ID
	}
	return order, nil
}

// All returns a copy of every order, oldest first.
func (s *Service) All() []models.Order {
	s.pause()
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// ByID returns the order with the given id. A non-positive id is rejected
// with ErrInvalidID; an unknown one with ErrNotFound.
func (s *Service) ByID(id int) (models.Order, error) {
	s.pause()
	if id <= 0 {
		return models.Order{}, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.find(id); ok {
		return o, nil
	}
	return models.Order{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// UpdateStatus moves an order to a new status and returns the updated record.
func (s *Service) UpdateStatus(id int, status string) (models.Order, error) {
	s.pause()
	if id <= 0 {
		return models.Order{}, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	parsed, err := ParseStatus(status)
	if err != nil {
		return models.Order{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = parsed
			return s.orders[i], nil
		}
	}
	return models.Order{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

func (s *Service) ByEmail(email string) []models.Order {
	s.pause()
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if strings.EqualFold(o.Email, email) {
			out = append(out, o)
		}
	}
	return out
}

func (s *Service) ByStatus(status models.OrderStatus) []models.Order {
	s.pause()
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// ParseStatus maps a raw string onto the status enum.
func ParseStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status: " + status)
	}
}

// find assumes the caller holds the lock.
func (s *Service) find(id int) (models.Order, bool) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

func (s *Service) pause() {
	if !s.latency {
		return
	}
	s.mu.Lock()
	d := 200 + time.Duration(s.rng.Intn(300))
	s.mu.Unlock()
	time.Sleep(d * time.Millisecond)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
