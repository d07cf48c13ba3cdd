package procurement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/shared"
)

// PurchaseOrder is the aggregate root. Its totals are denormalized
// copies of what the line items sum to; they are always recomputed
// from the submitted items, never read back from the rows.
type PurchaseOrder struct {
	shared.BaseEntity
	SupplierID    int64             `gorm:"not null;index"`
	Supplier      *partner.Supplier `gorm:"foreignKey:SupplierID"`
	OrderTime     time.Time         `gorm:"not null"`
	OrderNumber   int64             `gorm:"index"`
	TotalQuantity int               `gorm:"not null"`
	TotalAmount   decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	TotalTax      decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	Items         []LineItem        `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates an order for a resolved supplier with
// totals already derived from the submitted items. The order number
// is assigned after the first insert, inside the same transaction.
func NewPurchaseOrder(supplier *partner.Supplier, totals OrderTotals) (*PurchaseOrder, error) {
	if supplier == nil || supplier.ID == 0 {
		return nil, shared.NewDomainError("INVALID_ORDER", "Purchase order requires a persisted supplier")
	}

	return &PurchaseOrder{
		BaseEntity:    shared.NewBaseEntity(),
		SupplierID:    supplier.ID,
		Supplier:      supplier,
		OrderTime:     time.Now(),
		TotalQuantity: totals.Quantity,
		TotalAmount:   totals.Amount,
		TotalTax:      totals.Tax,
	}, nil
}

// AssignOrderNumber copies the database identity into the order number.
// It only applies once; later saves leave the number alone.
func (po *PurchaseOrder) AssignOrderNumber() {
	if po.OrderNumber == 0 {
		po.OrderNumber = po.ID
	}
}

// Revise points the order at the resolved supplier and overwrites the
// denormalized totals with a fresh derivation.
func (po *PurchaseOrder) Revise(supplier *partner.Supplier, totals OrderTotals) error {
	if supplier == nil || supplier.ID == 0 {
		return shared.NewDomainError("INVALID_ORDER", "Purchase order requires a persisted supplier")
	}

	po.SupplierID = supplier.ID
	po.Supplier = supplier
	po.TotalQuantity = totals.Quantity
	po.TotalAmount = totals.Amount
	po.TotalTax = totals.Tax
	po.UpdatedAt = time.Now()

	return nil
}
