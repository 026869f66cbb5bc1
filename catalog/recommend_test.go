package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelatedStaysInPriceWindow(t *testing.T) {
	s := testStore(t)

	// Source: blocks at 34.99 (Toys). Window is 17.50-52.48: the plush
	// elephant at 16.99 falls below it, only the tiles qualify.
	got := s.Related(7, 10)
	assert.Equal(t, []int{10}, ids(got))
}

func TestRelatedExcludesSourceAndHonorsLimit(t *testing.T) {
	s := testStore(t)

	got := s.Related(1, 1)
	require.Len(t, got, 1)
	assert.NotEqual(t, 1, got[0].ID)
	assert.Contains(t, []int{4, 5}, got[0].ID)

	// Fewer candidates than the limit is fine.
	assert.Len(t, s.Related(1, 50), 2)
}

func TestRelatedUnknownSource(t *testing.T) {
	s := testStore(t)
	assert.Empty(t, s.Related(999, 5))
	assert.Empty(t, s.Related(1, 0))
}

func TestRelatedSeededOrderIsReproducible(t *testing.T) {
	a := testStore(t, WithSeed(42))
	b := testStore(t, WithSeed(42))

	assert.Equal(t, ids(a.Related(1, 10)), ids(b.Related(1, 10)))
}

func TestComplementaryUsesPairTableFirst(t *testing.T) {
	s := testStore(t)

	// The tee pairs with the sneakers and the board book, in table order.
	got := s.Complementary(1, 2)
	assert.Equal(t, []int{5, 16}, ids(got))
}

func TestComplementaryBackfillsAcrossCategories(t *testing.T) {
	s := testStore(t)

	// The plush elephant (Toys, 16.99) has one curated pairing. Backfill
	// must come from other categories priced at or above 13.59.
	got := s.Complementary(8, 3)
	require.Len(t, got, 3)
	assert.Equal(t, 13, got[0].ID)

	for _, p := range got {
		assert.NotEqual(t, 8, p.ID, "source must never be re-included")
	}
	for _, p := range got[1:] {
		assert.NotEqual(t, "Toys", p.Category)
		assert.GreaterOrEqual(t, p.Price, 16.99*0.8)
	}
}

func TestComplementaryToleratesShortResults(t *testing.T) {
	s := testStore(t)

	// No curated pairs for the night light and a huge limit: everything
	// qualifying is returned, without the source, without duplicates.
	got := s.Complementary(19, 50)
	seen := map[int]bool{}
	for _, p := range got {
		assert.NotEqual(t, 19, p.ID)
		assert.NotEqual(t, "Baby Essentials", p.Category)
		assert.False(t, seen[p.ID], "duplicate product %d", p.ID)
		seen[p.ID] = true
	}
}

func TestComplementaryUnknownSource(t *testing.T) {
	s := testStore(t)
	assert.Empty(t, s.Complementary(999, 4))
}
