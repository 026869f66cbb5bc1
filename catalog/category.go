package catalog

import "github.com/apper-canvas/kidsstyle-mall-deliberate/models"

// Categories returns the category snapshot in load order.
func (s *Store) Categories() []models.Category {
	s.pause()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) CategoryByName(name string) (models.Category, bool) {
	for _, c := range s.categories {
		if c.Name == name {
			return c, true
		}
	}
	return models.Category{}, false
}

func (s *Store) Subcategories(category string) []models.Subcategory {
	c, ok := s.CategoryByName(category)
	if !ok {
		return nil
	}
	return c.Subcategories
}

// CategoryBySubcategory finds the category a subcategory belongs to.
func (s *Store) CategoryBySubcategory(subcategory string) (models.Category, bool) {
	for _, c := range s.categories {
		for _, sub := range c.Subcategories {
			if sub.Name == subcategory {
				return c, true
			}
		}
	}
	return models.Category{}, false
}

func (s *Store) HasSubcategories(category string) bool {
	c, ok := s.CategoryByName(category)
	return ok && len(c.Subcategories) > 0
}

// ProductCounts tallies products per category name, recomputed fresh from
// the snapshot on every call.
func (s *Store) ProductCounts() map[string]int {
	counts := make(map[string]int, len(s.categories))
	for _, p := range s.products {
		counts[p.Category]++
	}
	return counts
}
