package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/enum"
	"github.com/almadina/pos-api/internal/domain/repository"
	"github.com/almadina/pos-api/pkg/apperror"
)

// Analytics periods accepted by GetAnalytics
const (
	PeriodWeek  = "7d"
	PeriodMonth = "30d"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

// ReportService computes analytics and profit reports from ledger snapshots.
// All aggregation happens in Go over orders fetched once per report, so every
// figure in a report is derived from the same consistent snapshot.
type ReportService struct {
	orderRepo    repository.OrderRepository
	expenseRepo  repository.ExpenseRepository
	employeeRepo repository.EmployeeRepository
}

// NewReportService creates a new report service
func NewReportService(
	orderRepo repository.OrderRepository,
	expenseRepo repository.ExpenseRepository,
	employeeRepo repository.EmployeeRepository,
) *ReportService {
	return &ReportService{
		orderRepo:    orderRepo,
		expenseRepo:  expenseRepo,
		employeeRepo: employeeRepo,
	}
}

// TrendPoint is a single labeled bar in a trend chart
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TopItem is one entry in the top selling items list
type TopItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CategorySales is the revenue attributed to one menu category
type CategorySales struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// AnalyticsReport bundles every analytics widget for one time period
type AnalyticsReport struct {
	Period          string          `json:"period"`
	TotalRevenue    float64         `json:"total_revenue"`
	SalesTrend      []TrendPoint    `json:"sales_trend"`
	PeakHours       []TrendPoint    `json:"peak_hours"`
	TopItems        []TopItem       `json:"top_items"`
	SalesByCategory []CategorySales `json:"sales_by_category"`
}

// periodStart returns the inclusive window start for a period, or nil for the
// whole ledger.
func periodStart(period string, now time.Time) (*time.Time, error) {
	switch period {
	case PeriodAll:
		return nil, nil
	case PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return &start, nil
	case PeriodWeek:
		start := now.AddDate(0, 0, -7)
		return &start, nil
	case PeriodMonth:
		start := now.AddDate(0, 0, -30)
		return &start, nil
	default:
		return nil, apperror.NewBadRequestError("Unknown period: " + period)
	}
}

// GetAnalytics computes the full analytics report for one period
func (s *ReportService) GetAnalytics(ctx context.Context, period string) (*AnalyticsReport, error) {
	now := time.Now()
	start, err := periodStart(period, now)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListBetween(ctx, start, nil)
	if err != nil {
		return nil, err
	}

	var totalRevenue int64
	for i := range orders {
		totalRevenue += orders[i].GrandTotal
	}

	return &AnalyticsReport{
		Period:          period,
		TotalRevenue:    float64(totalRevenue) / 100,
		SalesTrend:      salesTrend(orders, period),
		PeakHours:       peakHours(orders),
		TopItems:        topItems(orders, 5),
		SalesByCategory: salesByCategory(orders),
	}, nil
}

// salesTrend buckets revenue by month for the year view and by day otherwise.
// Only buckets with at least one order appear, oldest first.
func salesTrend(orders []entity.Order, period string) []TrendPoint {
	if len(orders) == 0 {
		return []TrendPoint{}
	}

	type bucket struct {
		key   string
		when  time.Time
		total int64
	}
	byKey := make(map[string]*bucket)

	monthly := period == PeriodYear
	for i := range orders {
		date := orders[i].OrderDate
		var key string
		var when time.Time
		if monthly {
			key = fmt.Sprintf("%04d-%02d", date.Year(), date.Month())
			when = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		} else {
			key = date.Format("2006-01-02")
			when = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		}
		b, ok := byKey[key]
		if !ok {
			b = &bucket{key: key, when: when}
			byKey[key] = b
		}
		b.total += orders[i].GrandTotal
	}

	buckets := make([]*bucket, 0, len(byKey))
	for _, b := range byKey {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].when.Before(buckets[j].when) })

	points := make([]TrendPoint, len(buckets))
	for i, b := range buckets {
		label := b.when.Format("Jan 2")
		if monthly {
			label = b.when.Format("Jan")
		}
		points[i] = TrendPoint{Label: label, Value: float64(b.total) / 100}
	}
	return points
}

// peakHours counts orders per local hour of day. Hours with no orders are
// dropped; the rest come out in chronological hour order.
func peakHours(orders []entity.Order) []TrendPoint {
	var hours [24]int
	for i := range orders {
		hours[orders[i].OrderDate.Hour()]++
	}

	points := make([]TrendPoint, 0, 24)
	for h, count := range hours {
		if count == 0 {
			continue
		}
		points = append(points, TrendPoint{
			Label: fmt.Sprintf("%d:00", h),
			Value: float64(count),
		})
	}
	return points
}

// topItems returns the best selling items by total quantity. The sort is
// stable so items tied on quantity keep their first-seen order.
func topItems(orders []entity.Order, limit int) []TopItem {
	type itemCount struct {
		name     string
		quantity int
	}
	counts := make(map[uint]*itemCount)
	var seen []uint

	for i := range orders {
		for j := range orders[i].Items {
			line := &orders[i].Items[j]
			c, ok := counts[line.MenuItemID]
			if !ok {
				c = &itemCount{name: line.Name}
				counts[line.MenuItemID] = c
				seen = append(seen, line.MenuItemID)
			}
			c.quantity += line.Quantity
		}
	}

	items := make([]TopItem, 0, len(seen))
	for _, id := range seen {
		items = append(items, TopItem{Name: counts[id].name, Quantity: counts[id].quantity})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Quantity > items[j].Quantity })

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// salesByCategory sums line revenue per menu category, highest first.
// Categories with no sales in the window are omitted.
func salesByCategory(orders []entity.Order) []CategorySales {
	totals := make(map[enum.Category]int64)
	for i := range orders {
		for j := range orders[i].Items {
			line := &orders[i].Items[j]
			totals[line.Category] += line.UnitPrice * int64(line.Quantity)
		}
	}

	sales := make([]CategorySales, 0, len(totals))
	for _, category := range enum.Categories() {
		total, ok := totals[category]
		if !ok || total == 0 {
			continue
		}
		sales = append(sales, CategorySales{
			Category: category.String(),
			Amount:   float64(total) / 100,
		})
	}
	sort.SliceStable(sales, func(i, j int) bool { return sales[i].Amount > sales[j].Amount })
	return sales
}

// EmployeeSalary is one payroll line in the monthly profit report
type EmployeeSalary struct {
	Employee entity.Employee `json:"employee"`
	Cost     float64         `json:"cost"`
}

// MonthlyProfitReport is the profit and loss summary for one calendar month
type MonthlyProfitReport struct {
	Year           int              `json:"year"`
	Month          int              `json:"month"`
	Revenue        float64          `json:"revenue"`
	OtherExpenses  float64          `json:"other_expenses"`
	SalaryExpenses float64          `json:"salary_expenses"`
	TotalExpenses  float64          `json:"total_expenses"`
	NetProfit      float64          `json:"net_profit"`
	Expenses       []entity.Expense `json:"expenses"`
	Salaries       []EmployeeSalary `json:"salaries"`
}

// GetMonthlyProfit computes the profit report for a calendar month. Payroll
// counts only active employees; daily salaries are scaled by the real number
// of days in that month.
func (s *ReportService) GetMonthlyProfit(ctx context.Context, year int, month time.Month) (*MonthlyProfitReport, error) {
	if month < time.January || month > time.December {
		return nil, apperror.NewBadRequestError("Month must be between 1 and 12")
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	orders, err := s.orderRepo.ListBetween(ctx, &start, &end)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByStatus(ctx, enum.EmployeeStatusActive)
	if err != nil {
		return nil, err
	}

	var revenue int64
	for i := range orders {
		revenue += orders[i].GrandTotal
	}

	var otherExpenses int64
	for i := range expenses {
		otherExpenses += expenses[i].Amount
	}

	var salaryExpenses int64
	salaries := make([]EmployeeSalary, len(employees))
	for i := range employees {
		cost := employees[i].MonthlyCost(year, month)
		salaryExpenses += cost
		salaries[i] = EmployeeSalary{
			Employee: employees[i],
			Cost:     float64(cost) / 100,
		}
	}

	totalExpenses := otherExpenses + salaryExpenses

	return &MonthlyProfitReport{
		Year:           year,
		Month:          int(month),
		Revenue:        float64(revenue) / 100,
		OtherExpenses:  float64(otherExpenses) / 100,
		SalaryExpenses: float64(salaryExpenses) / 100,
		TotalExpenses:  float64(totalExpenses) / 100,
		NetProfit:      float64(revenue-totalExpenses) / 100,
		Expenses:       expenses,
		Salaries:       salaries,
	}, nil
}
