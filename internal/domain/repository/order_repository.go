package repository

import (
	"context"
	"time"

	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// OrderFilterParams holds filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
}

// OrderCursorFilterParams holds filtering parameters for cursor-based order queries
type OrderCursorFilterParams struct {
	Cursor    *pagination.CursorParams
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
}

// OrderRepository defines the interface for the order ledger
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListWithCursor(ctx context.Context, params *OrderCursorFilterParams) ([]entity.Order, error)
	// ListBetween returns every order with items whose date falls in [start, end),
	// oldest first. Used by the reporting engine to take ledger snapshots.
	ListBetween(ctx context.Context, start, end *time.Time) ([]entity.Order, error)
	// NextOrderNo reserves the next human-readable order number ("#1247").
	// Monotonic over the whole ledger, soft-deleted orders included, so numbers
	// are never reused.
	NextOrderNo(ctx context.Context) (string, error)
	Count(ctx context.Context) (int64, error)
}
