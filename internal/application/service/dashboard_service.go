package service

import (
	"context"
	"time"

	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/repository"
	"github.com/almadina/pos-api/pkg/pagination"
)

// DashboardService provides the front-desk dashboard statistics
type DashboardService struct {
	orderRepo repository.OrderRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(orderRepo repository.OrderRepository) *DashboardService {
	return &DashboardService{orderRepo: orderRepo}
}

// DashboardStats represents the dashboard summary for today plus recent history
type DashboardStats struct {
	TotalSales     float64        `json:"total_sales"`
	TotalOrders    int64          `json:"total_orders"`
	TotalCustomers int64          `json:"total_customers"`
	RecentOrders   []entity.Order `json:"recent_orders"`
}

// GetDashboardStats returns today's sales figures and the most recent orders.
// Walk-in customers are not tracked separately, so the customer count equals
// the order count.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	todays, err := s.orderRepo.ListBetween(ctx, &startOfDay, &endOfDay)
	if err != nil {
		return nil, err
	}

	var totalSales int64
	for i := range todays {
		totalSales += todays[i].GrandTotal
	}

	params := &repository.OrderFilterParams{
		Pagination: pagination.DefaultPagination(),
	}
	recent, _, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalSales:     float64(totalSales) / 100,
		TotalOrders:    int64(len(todays)),
		TotalCustomers: int64(len(todays)),
		RecentOrders:   recent,
	}, nil
}
