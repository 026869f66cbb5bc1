// Package cart maintains the authoritative cart line items and keeps them
// durable across restarts through the key-value store.
package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/models"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/storage"
)

const storageKey = "cart"

// Container owns the cart contents for the lifetime of the session. Every
// mutation synchronously writes the whole cart back to storage.
type Container struct {
	mu    sync.Mutex
	items []models.CartItem
	kv    storage.KV
}

// New restores the cart persisted under the fixed key. Missing or malformed
// saved state silently yields an empty cart, never an error.
func New(kv storage.KV) *Container {
	c := &Container{kv: kv}
	raw, ok := kv.Get(storageKey)
	if !ok {
		return c
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("cart: discarding unreadable saved cart: %v", err)
		return c
	}
	c.items = items
	return c
}

// AddItem merges the item into the cart: an existing line for the same
// product has its quantity bumped, otherwise the item is appended. A
// quantity below 1 counts as 1. Stock checks are the caller's job.
func (c *Container) AddItem(item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += item.Quantity
			c.persist()
			return
		}
	}
	c.items = append(c.items, item)
	c.persist()
}

// SetQuantity overwrites the quantity of a line item. A quantity of zero or
// less removes the line entirely.
func (c *Container) SetQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// RemoveItem deletes the line item, a no-op when absent.
func (c *Container) RemoveItem(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// Clear empties the cart, typically after a successful checkout.
func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persist()
}

// Items returns a copy of the line items in insertion order.
func (c *Container) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Item returns the line for a product, if present.
func (c *Container) Item(productID int) (models.CartItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return models.CartItem{}, false
}

// TotalItemCount sums all quantities, recomputed fresh on every call.
func (c *Container) TotalItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Subtotal sums price times quantity over the current line items.
func (c *Container) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// persist writes the full cart to storage. Callers hold the lock. Write
// failures are logged and swallowed; the in-memory cart stays authoritative.
func (c *Container) persist() {
	data, err := json.Marshal(c.items)
	if err != nil {
		log.Printf("cart: serialize failed: %v", err)
		return
	}
	if err := c.kv.Set(storageKey, string(data)); err != nil {
		log.Printf("cart: persist failed: %v", err)
	}
}
