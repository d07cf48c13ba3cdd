package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/procurement"
)

// GormUnitOfWork implements UnitOfWork on a GORM transaction. The
// callback receives repositories bound to the transaction, so supplier
// resolution, the order row and line item reconciliation commit or
// roll back together.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GormUnitOfWork
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Execute runs fn inside a database transaction
func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(repos procurement.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(procurement.Repositories{
			Suppliers: NewGormSupplierRepository(tx),
			Orders:    NewGormPurchaseOrderRepository(tx),
			LineItems: NewGormLineItemRepository(tx),
		})
	})
}
