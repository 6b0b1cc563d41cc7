package service

import (
	"context"
	"fmt"
	"time"

	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/repository"
	"github.com/almadina/pos-api/pkg/apperror"
	"github.com/google/uuid"
)

// OrderService handles order building, pricing and the order ledger
type OrderService struct {
	orderRepo    repository.OrderRepository
	menuRepo     repository.MenuRepository
	settingsRepo repository.SettingsRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	settingsRepo repository.SettingsRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		menuRepo:     menuRepo,
		settingsRepo: settingsRepo,
	}
}

// OrderLineInput represents one cart line in an incoming order
type OrderLineInput struct {
	MenuItemID uint
	Quantity   int
}

// CreateOrderInput represents an order to price and commit.
// Discount is in currency units, not cents.
type CreateOrderInput struct {
	Lines            []OrderLineInput
	Discount         float64
	UseServiceCharge bool
}

// buildCart validates the requested lines against the catalog and assembles a
// priced cart. Totals are always computed server-side from the stored prices;
// client-sent amounts are never trusted.
func (s *OrderService) buildCart(ctx context.Context, input *CreateOrderInput) (*entity.Cart, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	// Batch fetch all menu items in one query (prevents N+1)
	ids := make([]uint, len(input.Lines))
	for i, line := range input.Lines {
		ids[i] = line.MenuItemID
	}
	items, err := s.menuRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	itemMap := make(map[uint]*entity.MenuItem, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	cart := &entity.Cart{UseServiceCharge: input.UseServiceCharge}
	if input.Discount > 0 {
		cart.Discount = entity.ToCents(input.Discount)
	}

	for _, line := range input.Lines {
		item, exists := itemMap[line.MenuItemID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Menu item %d", line.MenuItemID))
		}
		if !item.IsAvailable() {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("%s is not available", item.Name))
		}
		cart.AddItem(item)
		cart.SetQuantity(item.ID, line.Quantity)
	}

	if cart.IsEmpty() {
		return nil, apperror.ErrEmptyCart
	}
	return cart, nil
}

// billingRates returns the current tax and service charge rates
func (s *OrderService) billingRates(ctx context.Context) (float64, float64, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return 0, 0, err
	}
	if settings == nil {
		settings = entity.DefaultBillingSettings()
	}
	return settings.TaxRate, settings.ServiceChargeRate, nil
}

// PreviewOrder prices the requested lines without committing anything.
// The returned order has no order number and is not stored: it backs the
// receipt preview shown before the cashier confirms.
func (s *OrderService) PreviewOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	cart, err := s.buildCart(ctx, input)
	if err != nil {
		return nil, err
	}

	taxRate, serviceChargeRate, err := s.billingRates(ctx)
	if err != nil {
		return nil, err
	}

	return cart.Finalize(time.Now(), taxRate, serviceChargeRate)
}

// CreateOrder prices and commits an order to the ledger, assigning the next
// monotonic order number.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	cart, err := s.buildCart(ctx, input)
	if err != nil {
		return nil, err
	}

	taxRate, serviceChargeRate, err := s.billingRates(ctx)
	if err != nil {
		return nil, err
	}

	order, err := cart.Finalize(time.Now(), taxRate, serviceChargeRate)
	if err != nil {
		return nil, err
	}

	orderNo, err := s.orderRepo.NextOrderNo(ctx)
	if err != nil {
		return nil, err
	}
	order.OrderNo = orderNo

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder retrieves a single order with its lines
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// GetOrderByNo retrieves a single order by its human-readable number
func (s *OrderService) GetOrderByNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// DeleteOrder removes an order from the ledger. Its number is never reissued.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}

// ListOrders returns the filtered order history, newest first
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return s.orderRepo.List(ctx, params)
}

// ListOrdersWithCursor returns orders using cursor-based pagination
func (s *OrderService) ListOrdersWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) ([]entity.Order, error) {
	return s.orderRepo.ListWithCursor(ctx, params)
}
