package entity

import "testing"

func TestSetPriceFromDecimal(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{180.00, 18000},
		{19.99, 1999},
		{70.05, 7005},
	}

	for _, tt := range tests {
		item := &MenuItem{}
		item.SetPriceFromDecimal(tt.price)
		if item.Price != tt.want {
			t.Errorf("SetPriceFromDecimal(%v): expected %d cents, got %d", tt.price, tt.want, item.Price)
		}
	}
}

func TestGetPriceDecimal(t *testing.T) {
	item := &MenuItem{Price: 18000}
	if got := item.GetPriceDecimal(); got != 180.00 {
		t.Errorf("expected 180.00, got %v", got)
	}
}
