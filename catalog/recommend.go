package catalog

import "github.com/apper-canvas/kidsstyle-mall-deliberate/models"

// complementaryPairs is the hand-authored "frequently bought together"
// table, keyed by product id. Entries that stop resolving are skipped and
// backfilled at query time.
var complementaryPairs = map[int][]int{
	1:  {5, 16},  // rainbow tee -> sneakers, board book
	2:  {1, 5},   // dungarees -> tee, sneakers
	5:  {1, 4},   // sneakers -> tee, summer dress
	7:  {15, 13}, // building blocks -> dinosaur book, bedtime stories
	8:  {13},     // plush elephant -> bedtime stories
	9:  {6},      // scooter -> puffer jacket
	11: {13, 4},  // rag doll -> bedtime stories, summer dress
	13: {8, 19},  // bedtime stories -> plush elephant, night light
	17: {18, 19}, // swaddles -> feeding set, night light
}

// Related returns up to limit products from the source's category priced
// within ±50% of it, excluding the source itself. Ordering is randomized on
// every call; callers must not assume determinism.
func (s *Store) Related(id, limit int) []models.Product {
	s.pause()
	src, ok := s.lookup(id)
	if !ok || limit <= 0 {
		return nil
	}

	lo, hi := src.Price*0.5, src.Price*1.5
	var out []models.Product
	for _, p := range s.products {
		if p.ID == id || p.Category != src.Category {
			continue
		}
		if p.Price < lo || p.Price > hi {
			continue
		}
		out = append(out, p)
	}

	s.shuffle(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Complementary returns up to limit curated pairings for the source product.
// When the pair table comes up short, the list is backfilled with random
// products from other categories priced at or above 80% of the source.
// Short or empty results are acceptable; callers must tolerate them.
func (s *Store) Complementary(id, limit int) []models.Product {
	s.pause()
	src, ok := s.lookup(id)
	if !ok || limit <= 0 {
		return nil
	}

	seen := map[int]bool{id: true}
	var out []models.Product
	for _, pid := range complementaryPairs[id] {
		if seen[pid] {
			continue
		}
		if p, found := s.lookup(pid); found {
			out = append(out, p)
			seen[pid] = true
		}
		if len(out) == limit {
			return out
		}
	}

	var pool []models.Product
	for _, p := range s.products {
		if seen[p.ID] || p.Category == src.Category {
			continue
		}
		if p.Price < src.Price*0.8 {
			continue
		}
		pool = append(pool, p)
	}
	s.shuffle(pool)

	for _, p := range pool {
		if len(out) == limit {
			break
		}
		out = append(out, p)
	}
	return out
}

// lookup is ByID without the simulated latency, for internal use.
func (s *Store) lookup(id int) (models.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}
