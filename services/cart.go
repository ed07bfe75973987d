package services

import (
	"math"

	"github.com/ArrowAk07/Green-Chilli/entity"
)

// TaxRate is the GST applied at checkout.
const TaxRate = 0.05

// CartLine snapshots the item at the moment it was added. The cart keeps the
// id and the price charged so it renders and checks out correctly even if the
// catalog changes afterwards.
type CartLine struct {
	ItemID    uint    `json:"itemId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
}

// Totals of a cart at one observation point, each rounded to two decimals.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// CartSession is the in-memory cart for one user. It is an ordered list of
// lines plus a running subtotal maintained on every mutation; the same item
// may appear on several lines, one per add. Not safe for concurrent use —
// mutations follow the sequence of user actions.
type CartSession struct {
	lines    []CartLine
	subtotal float64
}

func NewCartSession() *CartSession {
	return &CartSession{}
}

// Add appends a line priced at the item's current price. Always succeeds.
func (s *CartSession) Add(item *entity.FoodItem) {
	s.lines = append(s.lines, CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
	})
	s.subtotal += item.Price
}

// Remove deletes the line at index, preserving the order of the rest.
func (s *CartSession) Remove(index int) error {
	if index < 0 || index >= len(s.lines) {
		return ErrInvalidLine
	}
	s.subtotal -= s.lines[index].UnitPrice
	s.lines = append(s.lines[:index], s.lines[index+1:]...)
	return nil
}

// Clear empties the cart unconditionally. Returns false when the cart was
// already empty; any "are you sure" prompt belongs to the caller.
func (s *CartSession) Clear() bool {
	if len(s.lines) == 0 {
		return false
	}
	s.lines = nil
	s.subtotal = 0
	return true
}

// Lines returns a copy so callers cannot mutate cart state behind its back.
func (s *CartSession) Lines() []CartLine {
	out := make([]CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *CartSession) Len() int { return len(s.lines) }

func (s *CartSession) Subtotal() float64 { return round2(s.subtotal) }

// ComputeTotals applies the tax formula: tax = round2(subtotal * TaxRate),
// total = subtotal + tax. Rounded once here so stored and displayed values
// never diverge.
func (s *CartSession) ComputeTotals() Totals {
	subtotal := round2(s.subtotal)
	tax := round2(subtotal * TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    round2(subtotal + tax),
	}
}

// round2 rounds to two decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
