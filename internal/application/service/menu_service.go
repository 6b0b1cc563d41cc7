package service

import (
	"context"

	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/enum"
	"github.com/almadina/pos-api/internal/domain/repository"
	"github.com/almadina/pos-api/pkg/apperror"
)

// MenuService handles menu catalog operations
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// CreateMenuItemInput represents the create menu item input.
// Price is in currency units, not cents.
type CreateMenuItemInput struct {
	Name     string
	Category enum.Category
	Price    float64
	Status   enum.ItemStatus
	ImageURL *string
}

// UpdateMenuItemInput represents the update menu item input. Nil fields are
// left unchanged.
type UpdateMenuItemInput struct {
	Name     *string
	Category *enum.Category
	Price    *float64
	Status   *enum.ItemStatus
	ImageURL *string
}

// CreateMenuItem adds a new dish to the catalog
func (s *MenuService) CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Menu item name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Menu item price cannot be negative")
	}

	item := &entity.MenuItem{
		Name:     input.Name,
		Category: input.Category,
		Status:   input.Status,
		ImageURL: input.ImageURL,
	}
	item.SetPriceFromDecimal(input.Price)

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetMenuItem retrieves a menu item by ID
func (s *MenuService) GetMenuItem(ctx context.Context, id uint) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// UpdateMenuItem applies a partial update to a catalog entry. Orders that
// already snapshot the old values are unaffected.
func (s *MenuService) UpdateMenuItem(ctx context.Context, id uint, input *UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Menu item name cannot be empty")
		}
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Menu item price cannot be negative")
		}
		item.SetPriceFromDecimal(*input.Price)
	}
	if input.Status != nil {
		item.Status = *input.Status
	}
	if input.ImageURL != nil {
		item.ImageURL = input.ImageURL
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem removes a dish from the catalog. Historical order lines keep
// their snapshot of the item.
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uint) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.Delete(ctx, id)
}

// ListMenuItems returns the filtered catalog with the total match count
func (s *MenuService) ListMenuItems(ctx context.Context, params *repository.MenuFilterParams) ([]entity.MenuItem, int64, error) {
	return s.menuRepo.List(ctx, params)
}

// ListAvailable returns the items that can currently be ordered
func (s *MenuService) ListAvailable(ctx context.Context) ([]entity.MenuItem, error) {
	return s.menuRepo.ListAvailable(ctx)
}
