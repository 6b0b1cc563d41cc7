package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/almadina/pos-api/internal/domain/enum"
	"github.com/almadina/pos-api/pkg/apperror"
)

func menuItem(id uint, name string, priceCents int64) *MenuItem {
	return &MenuItem{
		ID:       id,
		Name:     name,
		Category: enum.CategoryChicken,
		Price:    priceCents,
		Status:   enum.ItemStatusAvailable,
	}
}

func TestCartAddItemMergesLines(t *testing.T) {
	cart := &Cart{}
	item := menuItem(1, "Chicken Fry", 9000)

	cart.AddItem(item)
	cart.AddItem(item)
	cart.AddItem(item)

	if cart.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", cart.Len())
	}
	lines := cart.Lines()
	if lines[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", lines[0].Quantity)
	}
	if lines[0].UnitPrice != 9000 {
		t.Errorf("expected snapshot price 9000, got %d", lines[0].UnitPrice)
	}
}

func TestCartSetQuantityRemovesAtZero(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantLen  int
	}{
		{"positive quantity keeps line", 5, 1},
		{"zero removes line", 0, 0},
		{"negative removes line", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{}
			cart.AddItem(menuItem(1, "Polao", 7000))
			cart.SetQuantity(1, tt.quantity)
			if cart.Len() != tt.wantLen {
				t.Errorf("expected %d lines, got %d", tt.wantLen, cart.Len())
			}
		})
	}
}

func TestCartSetQuantityUnknownItemIsNoop(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(menuItem(1, "Lassi", 6000))
	cart.SetQuantity(99, 4)

	lines := cart.Lines()
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Errorf("unexpected cart state after setting quantity for unknown item: %+v", lines)
	}
}

func TestCartTotals(t *testing.T) {
	// Two Chicken Biriyani at 180.00 plus one Mutton Curry at 90.00:
	// subtotal 450.00, 5% tax 22.50, 10% service charge 45.00,
	// discount 10.00, grand total 507.50.
	cart := &Cart{UseServiceCharge: true, Discount: 1000}
	biriyani := menuItem(1, "Chicken Biriyani", 18000)
	cart.AddItem(biriyani)
	cart.AddItem(biriyani)
	cart.AddItem(menuItem(2, "Mutton Curry", 9000))

	totals := cart.Totals(0.05, 0.10)

	if totals.Subtotal != 45000 {
		t.Errorf("subtotal: expected 45000, got %d", totals.Subtotal)
	}
	if totals.Tax != 2250 {
		t.Errorf("tax: expected 2250, got %d", totals.Tax)
	}
	if totals.ServiceCharge != 4500 {
		t.Errorf("service charge: expected 4500, got %d", totals.ServiceCharge)
	}
	if totals.GrandTotal != 50750 {
		t.Errorf("grand total: expected 50750, got %d", totals.GrandTotal)
	}
}

func TestCartTotalsGrandTotalIdentity(t *testing.T) {
	tests := []struct {
		name             string
		discount         int64
		useServiceCharge bool
	}{
		{"no discount no service charge", 0, false},
		{"discount only", 2500, false},
		{"service charge only", 0, true},
		{"both", 2500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{Discount: tt.discount, UseServiceCharge: tt.useServiceCharge}
			cart.AddItem(menuItem(1, "Beef Bhuna", 18000))
			cart.AddItem(menuItem(2, "Plain Rice", 3000))
			cart.SetQuantity(2, 4)

			totals := cart.Totals(0.05, 0.10)
			want := totals.Subtotal + totals.Tax - totals.Discount + totals.ServiceCharge
			if totals.GrandTotal != want {
				t.Errorf("grand total %d does not equal subtotal+tax-discount+serviceCharge %d",
					totals.GrandTotal, want)
			}
		})
	}
}

func TestCartTotalsIdempotent(t *testing.T) {
	cart := &Cart{UseServiceCharge: true, Discount: 500}
	cart.AddItem(menuItem(1, "Firni", 5000))
	cart.SetQuantity(1, 3)

	first := cart.Totals(0.05, 0.10)
	second := cart.Totals(0.05, 0.10)
	if first != second {
		t.Errorf("totals changed between reads: %+v vs %+v", first, second)
	}
}

func TestCartServiceChargeDisabled(t *testing.T) {
	cart := &Cart{UseServiceCharge: false}
	cart.AddItem(menuItem(1, "Dal Fry", 5000))

	totals := cart.Totals(0.05, 0.10)
	if totals.ServiceCharge != 0 {
		t.Errorf("expected no service charge, got %d", totals.ServiceCharge)
	}
}

func TestCartFinalizeEmpty(t *testing.T) {
	cart := &Cart{}
	_, err := cart.Finalize(time.Now(), 0.05, 0.10)
	if !errors.Is(err, apperror.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCartFinalizeSnapshotsLines(t *testing.T) {
	now := time.Date(2026, time.August, 15, 13, 30, 0, 0, time.UTC)

	cart := &Cart{UseServiceCharge: true}
	cart.AddItem(menuItem(1, "Mutton Kacchi", 28000))
	cart.SetQuantity(1, 2)
	cart.AddItem(menuItem(2, "Cold Drink", 3000))

	order, err := cart.Finalize(now, 0.05, 0.10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !order.OrderDate.Equal(now) {
		t.Errorf("order date: expected %v, got %v", now, order.OrderDate)
	}
	if order.OrderNo != "" {
		t.Errorf("order number must be assigned by the ledger, got %q", order.OrderNo)
	}
	if order.TotalItems != 3 {
		t.Errorf("total items: expected 3, got %d", order.TotalItems)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(order.Items))
	}
	if order.Items[0].LineTotal != 56000 {
		t.Errorf("line total: expected 56000, got %d", order.Items[0].LineTotal)
	}

	// Finalize must not consume the cart.
	if cart.IsEmpty() {
		t.Error("cart should remain editable after finalize")
	}
}

func TestCartTotalsRounding(t *testing.T) {
	// 3 x 0.33 = 0.99; 5% tax = 0.0495 which must round to 0.05.
	cart := &Cart{}
	cart.AddItem(menuItem(1, "Sample", 33))
	cart.SetQuantity(1, 3)

	totals := cart.Totals(0.05, 0.10)
	if totals.Tax != 5 {
		t.Errorf("tax: expected 5 cents, got %d", totals.Tax)
	}
}

func TestToCents(t *testing.T) {
	// 19.99 has no exact binary representation; truncation would store 1998.
	tests := []struct {
		amount float64
		want   int64
	}{
		{19.99, 1999},
		{0.1, 10},
		{107.95, 10795},
		{450.00, 45000},
		{0, 0},
	}

	for _, tt := range tests {
		if got := ToCents(tt.amount); got != tt.want {
			t.Errorf("ToCents(%v): expected %d, got %d", tt.amount, tt.want, got)
		}
	}
}
