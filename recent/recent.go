// Package recent tracks which products a visitor viewed: an ordered,
// de-duplicated, capped id list persisted across sessions.
package recent

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/catalog"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/models"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/storage"
)

const (
	storageKey = "recently_viewed"
	maxItems   = 8
)

// Tracker owns the recently-viewed id list. Storage failures degrade to an
// empty list rather than an error.
type Tracker struct {
	mu      sync.Mutex
	kv      storage.KV
	catalog *catalog.Store
}

func New(kv storage.KV, cat *catalog.Store) *Tracker {
	return &Tracker{kv: kv, catalog: cat}
}

// TrackView moves the product to the front of the list, dropping any earlier
// occurrence and truncating to the cap. Persists immediately.
func (t *Tracker) TrackView(productID int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := []int{productID}
	for _, id := range t.load() {
		if id != productID {
			ids = append(ids, id)
		}
	}
	if len(ids) > maxItems {
		ids = ids[:maxItems]
	}

	data, err := json.Marshal(ids)
	if err != nil {
		log.Printf("recent: serialize failed: %v", err)
		return
	}
	if err := t.kv.Set(storageKey, string(data)); err != nil {
		log.Printf("recent: persist failed: %v", err)
	}
}

// Products resolves the stored ids against the catalog, most recent first.
// Ids that no longer resolve are silently dropped.
func (t *Tracker) Products() []models.Product {
	t.mu.Lock()
	ids := t.load()
	t.mu.Unlock()
	if len(ids) == 0 {
		return nil
	}

	all := t.catalog.All(catalog.Filter{})
	byID := make(map[int]models.Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	out := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
		if len(out) == maxItems {
			break
		}
	}
	return out
}

// Clear deletes the persisted list entirely.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.kv.Delete(storageKey); err != nil {
		log.Printf("recent: clear failed: %v", err)
	}
}

// load reads the persisted id list; malformed data counts as empty. Callers
// hold the lock.
func (t *Tracker) load() []int {
	raw, ok := t.kv.Get(storageKey)
	if !ok {
		return nil
	}
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("recent: discarding unreadable view history: %v", err)
		return nil
	}
	return ids
}
