package procurement

import (
	"context"

	"github.com/procure/backend/internal/domain/partner"
)

// OrderFilter narrows a listing by case-insensitive substring matches.
// Zero values mean the dimension is not filtered.
type OrderFilter struct {
	SupplierName string
	ItemName     string
}

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByID finds an order with its supplier and line items loaded
	FindByID(ctx context.Context, id int64) (*PurchaseOrder, error)

	// FindByFilter lists orders matching the filter, each fully loaded
	FindByFilter(ctx context.Context, filter OrderFilter) ([]*PurchaseOrder, error)

	// Save creates or updates an order row. On first insert the order
	// number is assigned from the generated id and persisted as well.
	Save(ctx context.Context, order *PurchaseOrder) error

	// Delete removes an order and cascades to its line items
	Delete(ctx context.Context, order *PurchaseOrder) error
}

// LineItemRepository defines the interface for line item persistence
type LineItemRepository interface {
	// FindByOrderAndID finds a line item scoped to one order
	FindByOrderAndID(ctx context.Context, orderID, id int64) (*LineItem, error)

	// FindByOrderID lists the line items of an order
	FindByOrderID(ctx context.Context, orderID int64) ([]*LineItem, error)

	// Save creates or updates a line item
	Save(ctx context.Context, item *LineItem) error

	// DeleteExcept prunes the order's rows whose ids are not in keep.
	// An empty keep list removes every row of the order.
	DeleteExcept(ctx context.Context, orderID int64, keep []int64) error
}

// Repositories is the transaction-scoped repository set handed to a
// unit of work callback. Every repository in the set runs on the same
// database transaction.
type Repositories struct {
	Suppliers partner.SupplierRepository
	Orders    PurchaseOrderRepository
	LineItems LineItemRepository
}

// UnitOfWork runs a function atomically over the repository set. An
// error from the function rolls back everything it wrote.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}
