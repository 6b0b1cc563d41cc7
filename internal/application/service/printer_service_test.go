package service

import (
	"strings"
	"testing"

	"github.com/almadina/pos-api/internal/domain/entity"
)

func TestFormatReceiptLayout(t *testing.T) {
	r := &entity.Receipt{
		Header: entity.ReceiptHeader{
			RestaurantName: "Al Madina Hotel",
			Address:        "123 Restaurant St, Food City",
			Phone:          "+880123456789",
		},
		OrderNo: "#1001",
		Date:    "2026-08-31",
		Time:    "19:45",
		Items: []entity.ReceiptItem{
			{Name: "Chicken Biriyani", Quantity: 2, UnitPrice: 180.00, Total: 360.00},
			{Name: "Borhani", Quantity: 1, UnitPrice: 60.00, Total: 60.00},
		},
		Subtotal:      420.00,
		Tax:           21.00,
		Discount:      0,
		ServiceCharge: 42.00,
		GrandTotal:    483.00,
	}

	out := string(FormatReceipt(r, "Thank you for dining with us!"))

	for _, want := range []string{
		"Al Madina Hotel",
		"Contact: +880123456789",
		"#1001",
		"2x Chicken Biriyani",
		"@ 180.00 each",
		"Subtotal:",
		"Tax:",
		"Service Charge:",
		"TOTAL:",
		"483.00",
		"Thank you for dining with us!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("receipt missing %q", want)
		}
	}

	// Zero amounts never print a row.
	if strings.Contains(out, "Discount:") {
		t.Error("zero discount must not appear on the receipt")
	}

	// Single-quantity lines skip the unit price breakdown.
	if strings.Contains(out, "@ 60.00 each") {
		t.Error("unit price breakdown should only appear for quantity > 1")
	}
}
