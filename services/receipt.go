package services

import (
	"fmt"
	"strings"

	"github.com/ArrowAk07/Green-Chilli/entity"
)

const receiptRule = "--------------------------------------------------\n"

// RenderReceipt formats a committed (or about-to-be-committed) order as the
// fixed-width text receipt. Pure formatting: no side effects, always succeeds.
func RenderReceipt(order *entity.Order, items []entity.OrderItem, customerName string) string {
	var b strings.Builder

	b.WriteString("==================== GREEN CHILLI ====================\n")
	b.WriteString("================= A Bait of Flavours ==================\n\n")
	b.WriteString(receiptRule)
	fmt.Fprintf(&b, "%-40s\n", "RECEIPT")
	b.WriteString(receiptRule)
	fmt.Fprintf(&b, "%-30s %s\n", "Customer Name:", customerName)
	fmt.Fprintf(&b, "%-30s %s\n", "Date:", order.OrderDate.Format("02 Jan 2006"))
	fmt.Fprintf(&b, "%-30s %s\n", "Time:", order.OrderDate.Format("03:04 PM"))
	b.WriteString(receiptRule)
	fmt.Fprintf(&b, "%-30s %10s\n", "ITEM", "PRICE")
	b.WriteString(receiptRule)

	for _, it := range items {
		fmt.Fprintf(&b, "%-30s ₹%10.2f\n", it.ItemName, it.ItemPrice)
	}

	b.WriteString(receiptRule)
	fmt.Fprintf(&b, "%-30s ₹%10.2f\n", "SUBTOTAL:", order.Subtotal)
	fmt.Fprintf(&b, "%-30s ₹%10.2f\n", "GST (5%):", order.Tax)
	b.WriteString(receiptRule)
	fmt.Fprintf(&b, "%-30s ₹%10.2f\n", "TOTAL:", order.Total)
	b.WriteString(receiptRule)
	b.WriteString("\n")
	b.WriteString("Payment Method: Cash/Card\n")
	b.WriteString("Thank you for dining with us at Green Chilli!\n")

	return b.String()
}
