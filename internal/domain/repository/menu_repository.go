package repository

import (
	"context"

	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/enum"
	"github.com/almadina/pos-api/pkg/pagination"
)

// MenuFilterParams holds filtering parameters for menu item queries
type MenuFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   *enum.Category
	Status     *enum.ItemStatus
}

// MenuRepository defines the interface for menu catalog data access
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uint) (*entity.MenuItem, error)
	GetByIDs(ctx context.Context, ids []uint) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *MenuFilterParams) ([]entity.MenuItem, int64, error)
	ListAvailable(ctx context.Context) ([]entity.MenuItem, error)
}
