package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/procurement"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID finds a purchase order with its supplier and line items loaded
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id int64) (*procurement.PurchaseOrder, error) {
	var order procurement.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, procurement.NewPurchaseOrderNotFoundError(id)
		}
		return nil, err
	}
	return &order, nil
}

// FindByFilter lists purchase orders matching the filter, each fully
// loaded. Name filters are case-insensitive substring matches; the
// item name filter joins through line items.
func (r *GormPurchaseOrderRepository) FindByFilter(ctx context.Context, filter procurement.OrderFilter) ([]*procurement.PurchaseOrder, error) {
	query := r.db.WithContext(ctx).Model(&procurement.PurchaseOrder{})

	if filter.SupplierName != "" {
		query = query.
			Joins("JOIN suppliers ON suppliers.id = purchase_orders.supplier_id").
			Where("suppliers.name ILIKE ?", "%"+filter.SupplierName+"%")
	}
	if filter.ItemName != "" {
		query = query.
			Joins("JOIN line_items ON line_items.order_id = purchase_orders.id").
			Where("line_items.item_name ILIKE ?", "%"+filter.ItemName+"%")
	}

	var orders []*procurement.PurchaseOrder
	if err := query.
		Distinct("purchase_orders.*").
		Preload("Supplier").
		Preload("Items").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order row. On first insert the order
// number is copied from the generated id and persisted in the same
// transaction.
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *procurement.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		isNew := order.ID == 0
		if err := tx.Omit("Supplier", "Items").Save(order).Error; err != nil {
			return err
		}
		if isNew {
			order.AssignOrderNumber()
			if err := tx.Model(&procurement.PurchaseOrder{}).
				Where("id = ?", order.ID).
				Update("order_number", order.OrderNumber).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes an order. Line items go with it via the cascading
// foreign key.
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, order *procurement.PurchaseOrder) error {
	return r.db.WithContext(ctx).Delete(&procurement.PurchaseOrder{}, "id = ?", order.ID).Error
}
