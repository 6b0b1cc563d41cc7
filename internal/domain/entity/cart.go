package entity

import (
	"math"
	"time"

	"github.com/almadina/pos-api/pkg/apperror"
)

// Cart accumulates menu item selections into draft order lines.
// It is NOT a database entity — it exists only while an order is being built,
// and all totals are recomputed from the current lines on every read.
type Cart struct {
	lines            []OrderItem
	Discount         int64 // cents
	UseServiceCharge bool
}

// CartTotals holds the priced breakdown of a cart at one instant.
type CartTotals struct {
	Subtotal      int64 `json:"-"`
	Tax           int64 `json:"-"`
	Discount      int64 `json:"-"`
	ServiceCharge int64 `json:"-"`
	GrandTotal    int64 `json:"-"`
}

// AddItem adds one unit of a menu item. A line for the same menu item ID has its
// quantity incremented; otherwise a new line snapshots the item at quantity 1.
func (c *Cart) AddItem(item *MenuItem) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, OrderItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Category:   item.Category,
		UnitPrice:  item.Price,
		Quantity:   1,
	})
}

// SetQuantity sets the quantity of an existing line. A quantity of zero or less
// removes the line: the cart never holds a line with quantity <= 0.
func (c *Cart) SetQuantity(menuItemID uint, quantity int) {
	for i := range c.lines {
		if c.lines[i].MenuItemID != menuItemID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		return
	}
}

// Lines returns a copy of the current order lines.
func (c *Cart) Lines() []OrderItem {
	out := make([]OrderItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Totals prices the cart against the given billing rates. Pure function of the
// current lines, discount and service charge flag: calling it twice without a
// mutation in between yields identical results.
func (c *Cart) Totals(taxRate, serviceChargeRate float64) CartTotals {
	var subtotal int64
	for i := range c.lines {
		subtotal += c.lines[i].UnitPrice * int64(c.lines[i].Quantity)
	}

	tax := roundCents(float64(subtotal) * taxRate)
	var serviceCharge int64
	if c.UseServiceCharge {
		serviceCharge = roundCents(float64(subtotal) * serviceChargeRate)
	}

	return CartTotals{
		Subtotal:      subtotal,
		Tax:           tax,
		Discount:      c.Discount,
		ServiceCharge: serviceCharge,
		GrandTotal:    subtotal + tax - c.Discount + serviceCharge,
	}
}

// Finalize snapshots the cart into an Order valued at the given instant.
// The order number is assigned by the ledger on commit, not here, and the
// cart itself is left untouched so a cancelled preview can keep being edited.
func (c *Cart) Finalize(now time.Time, taxRate, serviceChargeRate float64) (*Order, error) {
	if c.IsEmpty() {
		return nil, apperror.ErrEmptyCart
	}

	totals := c.Totals(taxRate, serviceChargeRate)

	items := c.Lines()
	var totalItems int
	for i := range items {
		items[i].LineTotal = items[i].UnitPrice * int64(items[i].Quantity)
		totalItems += items[i].Quantity
	}

	return &Order{
		OrderDate:     now,
		TotalItems:    totalItems,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		ServiceCharge: totals.ServiceCharge,
		GrandTotal:    totals.GrandTotal,
	}, nil
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}

// ToCents converts a decimal currency amount to cents, rounding to the
// nearest cent. Plain truncation turns an entered 19.99 into 1998 cents.
func ToCents(v float64) int64 {
	return roundCents(v * 100)
}
