package services

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ArrowAk07/Green-Chilli/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() (*entity.Order, []entity.OrderItem) {
	order := &entity.Order{
		OrderDate: time.Date(2025, 6, 14, 19, 30, 0, 0, time.UTC),
		Subtotal:  400.00,
		Tax:       20.00,
		Total:     420.00,
	}
	items := []entity.OrderItem{
		{FoodItemID: 1, ItemName: "Paneer Tikka", ItemPrice: 250.00},
		{FoodItemID: 2, ItemName: "Dal Makhani", ItemPrice: 150.00},
	}
	return order, items
}

func TestRenderReceiptLayout(t *testing.T) {
	order, items := sampleOrder()
	got := RenderReceipt(order, items, "Abhishek")

	assert.True(t, strings.HasPrefix(got, "==================== GREEN CHILLI ====================\n"))
	assert.Contains(t, got, "RECEIPT")
	assert.Contains(t, got, fmt.Sprintf("%-30s %s\n", "Customer Name:", "Abhishek"))
	assert.Contains(t, got, fmt.Sprintf("%-30s %s\n", "Date:", "14 Jun 2025"))
	assert.Contains(t, got, fmt.Sprintf("%-30s %s\n", "Time:", "07:30 PM"))
	assert.Contains(t, got, fmt.Sprintf("%-30s ₹%10.2f\n", "SUBTOTAL:", 400.00))
	assert.Contains(t, got, fmt.Sprintf("%-30s ₹%10.2f\n", "GST (5%):", 20.00))
	assert.Contains(t, got, fmt.Sprintf("%-30s ₹%10.2f\n", "TOTAL:", 420.00))
	assert.True(t, strings.HasSuffix(got, "Thank you for dining with us at Green Chilli!\n"))
}

func TestRenderReceiptIsDeterministic(t *testing.T) {
	order, items := sampleOrder()
	assert.Equal(t, RenderReceipt(order, items, "A"), RenderReceipt(order, items, "A"))
}

// parseReceiptItems reads the itemized section back out of a rendered receipt.
func parseReceiptItems(t *testing.T, receipt string) []entity.OrderItem {
	t.Helper()

	lines := strings.Split(receipt, "\n")
	header := fmt.Sprintf("%-30s %10s", "ITEM", "PRICE")

	start := -1
	for i, ln := range lines {
		if ln == header {
			start = i + 2 // skip header and the rule under it
			break
		}
	}
	require.GreaterOrEqual(t, start, 0, "item header not found")

	var out []entity.OrderItem
	for _, ln := range lines[start:] {
		if strings.HasPrefix(ln, "----") {
			break
		}
		name, priceStr, ok := strings.Cut(ln, "₹")
		require.True(t, ok, "item line missing currency symbol: %q", ln)
		price, err := strconv.ParseFloat(strings.TrimSpace(priceStr), 64)
		require.NoError(t, err)
		out = append(out, entity.OrderItem{
			ItemName:  strings.TrimSpace(name),
			ItemPrice: price,
		})
	}
	return out
}

func TestReceiptItemsRoundTrip(t *testing.T) {
	order, items := sampleOrder()
	got := parseReceiptItems(t, RenderReceipt(order, items, "Abhishek"))

	require.Len(t, got, len(items))
	for i := range items {
		assert.Equal(t, items[i].ItemName, got[i].ItemName)
		assert.Equal(t, items[i].ItemPrice, got[i].ItemPrice)
	}
}
