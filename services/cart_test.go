package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumLines(s *CartSession) float64 {
	var sum float64
	for _, ln := range s.Lines() {
		sum += ln.UnitPrice
	}
	return sum
}

func TestCartSubtotalMatchesLinesAfterEveryMutation(t *testing.T) {
	s := NewCartSession()
	items := []struct {
		id    uint
		name  string
		price float64
	}{
		{1, "Paneer Tikka", 200},
		{2, "Garlic Naan", 60},
		{3, "Butter Chicken", 240},
		{2, "Garlic Naan", 60},
	}

	for _, it := range items {
		s.Add(foodItem(it.id, it.name, it.price))
		assert.InDelta(t, sumLines(s), s.Subtotal(), 0.001)
	}

	require.NoError(t, s.Remove(1))
	assert.InDelta(t, sumLines(s), s.Subtotal(), 0.001)
	require.NoError(t, s.Remove(0))
	assert.InDelta(t, sumLines(s), s.Subtotal(), 0.001)
}

func TestComputeTotals(t *testing.T) {
	s := NewCartSession()
	s.Add(foodItem(1, "Thali", 250))
	s.Add(foodItem(2, "Biryani", 150))

	totals := s.ComputeTotals()
	assert.Equal(t, 400.00, totals.Subtotal)
	assert.Equal(t, 20.00, totals.Tax)
	assert.Equal(t, 420.00, totals.Total)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := NewCartSession().ComputeTotals()
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Tax)
	assert.Equal(t, 0.0, totals.Total)
}

func TestComputeTotalsRoundsOnce(t *testing.T) {
	s := NewCartSession()
	s.Add(foodItem(1, "Chai", 33.33))

	totals := s.ComputeTotals()
	assert.Equal(t, 33.33, totals.Subtotal)
	assert.Equal(t, 1.67, totals.Tax) // round2(1.6665), half away from zero
	assert.Equal(t, 35.00, totals.Total)
}

func TestAddSameItemTwiceRemoveFirst(t *testing.T) {
	s := NewCartSession()
	item := foodItem(1, "Dal Makhani", 100)
	s.Add(item)
	s.Add(item)
	require.Equal(t, 2, s.Len())

	require.NoError(t, s.Remove(0))
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 100.00, s.Subtotal())
	assert.Equal(t, "Dal Makhani", s.Lines()[0].Name)
}

func TestRemovePreservesOrder(t *testing.T) {
	s := NewCartSession()
	s.Add(foodItem(1, "A", 10))
	s.Add(foodItem(2, "B", 20))
	s.Add(foodItem(3, "C", 30))

	require.NoError(t, s.Remove(1))

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "A", lines[0].Name)
	assert.Equal(t, "C", lines[1].Name)
}

func TestRemoveInvalidIndex(t *testing.T) {
	s := NewCartSession()
	s.Add(foodItem(1, "A", 10))

	assert.ErrorIs(t, s.Remove(-1), ErrInvalidLine)
	assert.ErrorIs(t, s.Remove(1), ErrInvalidLine)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 10.00, s.Subtotal())
}

func TestClear(t *testing.T) {
	s := NewCartSession()
	s.Add(foodItem(1, "A", 10))

	assert.True(t, s.Clear())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0.0, s.Subtotal())
}

func TestClearEmptyCartIsNoOp(t *testing.T) {
	s := NewCartSession()
	assert.False(t, s.Clear())
	assert.Equal(t, 0.0, s.Subtotal())
	assert.Equal(t, 0, s.Len())
}

func TestLineSnapshotSurvivesCatalogChange(t *testing.T) {
	s := NewCartSession()
	item := foodItem(7, "Kulfi", 80)
	s.Add(item)

	// later catalog edits must not affect the line already in the cart
	item.Name = "Kulfi Falooda"
	item.Price = 120

	ln := s.Lines()[0]
	assert.Equal(t, "Kulfi", ln.Name)
	assert.Equal(t, 80.00, ln.UnitPrice)
	assert.Equal(t, uint(7), ln.ItemID)
}
