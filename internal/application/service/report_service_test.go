package service

import (
	"testing"
	"time"

	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/enum"
)

func orderAt(when time.Time, grandTotal int64, items ...entity.OrderItem) entity.Order {
	return entity.Order{
		OrderDate:  when,
		GrandTotal: grandTotal,
		Items:      items,
	}
}

func line(menuItemID uint, name string, category enum.Category, unitPrice int64, quantity int) entity.OrderItem {
	return entity.OrderItem{
		MenuItemID: menuItemID,
		Name:       name,
		Category:   category,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
	}
}

func TestSalesTrendDailyBuckets(t *testing.T) {
	day1 := time.Date(2026, time.August, 2, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.August, 5, 19, 30, 0, 0, time.UTC)

	orders := []entity.Order{
		orderAt(day1, 10000),
		orderAt(day1.Add(2*time.Hour), 5000),
		orderAt(day2, 20000),
	}

	points := salesTrend(orders, PeriodMonth)
	if len(points) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(points))
	}
	if points[0].Label != "Aug 2" || points[0].Value != 150.00 {
		t.Errorf("first bucket: got %+v", points[0])
	}
	if points[1].Label != "Aug 5" || points[1].Value != 200.00 {
		t.Errorf("second bucket: got %+v", points[1])
	}
}

func TestSalesTrendMonthlyBucketsForYear(t *testing.T) {
	jan := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC)

	orders := []entity.Order{
		orderAt(mar, 30000),
		orderAt(jan, 10000),
		orderAt(jan.AddDate(0, 0, 10), 20000),
	}

	points := salesTrend(orders, PeriodYear)
	if len(points) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(points))
	}
	if points[0].Label != "Jan" || points[0].Value != 300.00 {
		t.Errorf("first bucket: got %+v", points[0])
	}
	if points[1].Label != "Mar" || points[1].Value != 300.00 {
		t.Errorf("second bucket: got %+v", points[1])
	}
}

func TestSalesTrendEmpty(t *testing.T) {
	points := salesTrend(nil, PeriodWeek)
	if len(points) != 0 {
		t.Errorf("expected no buckets for empty ledger, got %d", len(points))
	}
}

func TestPeakHoursSkipsQuietHours(t *testing.T) {
	base := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		orderAt(base.Add(12*time.Hour), 1000),
		orderAt(base.Add(12*time.Hour+30*time.Minute), 1000),
		orderAt(base.Add(20*time.Hour), 1000),
	}

	points := peakHours(orders)
	if len(points) != 2 {
		t.Fatalf("expected 2 busy hours, got %d", len(points))
	}
	if points[0].Label != "12:00" || points[0].Value != 2 {
		t.Errorf("first hour: got %+v", points[0])
	}
	if points[1].Label != "20:00" || points[1].Value != 1 {
		t.Errorf("second hour: got %+v", points[1])
	}
}

func TestTopItemsLimitAndStability(t *testing.T) {
	when := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		orderAt(when, 0,
			line(1, "Chicken Biriyani", enum.CategoryBiriyani, 18000, 5),
			line(2, "Polao", enum.CategoryRice, 7000, 3),
			line(3, "Lassi", enum.CategoryDrinks, 6000, 3),
		),
		orderAt(when, 0,
			line(4, "Beef Curry", enum.CategoryBeef, 16000, 2),
			line(5, "Dal Fry", enum.CategoryVegetables, 5000, 1),
			line(6, "Firni", enum.CategoryDesserts, 5000, 1),
		),
	}

	items := topItems(orders, 5)
	if len(items) != 5 {
		t.Fatalf("expected top 5, got %d", len(items))
	}
	if items[0].Name != "Chicken Biriyani" || items[0].Quantity != 5 {
		t.Errorf("top item: got %+v", items[0])
	}
	// Polao and Lassi tie on quantity; first seen wins.
	if items[1].Name != "Polao" || items[2].Name != "Lassi" {
		t.Errorf("tie order not stable: %+v, %+v", items[1], items[2])
	}
}

func TestTopItemsAggregatesAcrossOrders(t *testing.T) {
	when := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		orderAt(when, 0, line(1, "Chicken Fry", enum.CategoryChicken, 9000, 2)),
		orderAt(when, 0, line(1, "Chicken Fry", enum.CategoryChicken, 9000, 4)),
	}

	items := topItems(orders, 5)
	if len(items) != 1 || items[0].Quantity != 6 {
		t.Errorf("expected single item with quantity 6, got %+v", items)
	}
}

func TestSalesByCategory(t *testing.T) {
	when := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		orderAt(when, 0,
			line(1, "Chicken Biriyani", enum.CategoryBiriyani, 18000, 2),
			line(2, "Cold Drink", enum.CategoryDrinks, 3000, 1),
		),
		orderAt(when, 0,
			line(3, "Mutton Biriyani", enum.CategoryBiriyani, 22000, 1),
		),
	}

	sales := salesByCategory(orders)
	if len(sales) != 2 {
		t.Fatalf("expected 2 categories with sales, got %d", len(sales))
	}
	if sales[0].Category != "Biriyani" || sales[0].Amount != 580.00 {
		t.Errorf("first category: got %+v", sales[0])
	}
	if sales[1].Category != "Drinks" || sales[1].Amount != 30.00 {
		t.Errorf("second category: got %+v", sales[1])
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, time.August, 31, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		period  string
		want    *time.Time
		wantErr bool
	}{
		{PeriodAll, nil, false},
		{PeriodYear, timePtr(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)), false},
		{PeriodWeek, timePtr(now.AddDate(0, 0, -7)), false},
		{PeriodMonth, timePtr(now.AddDate(0, 0, -30)), false},
		{"2d", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			got, err := periodStart(tt.period, now)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if got != nil && !got.Equal(*tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
