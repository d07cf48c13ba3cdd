package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/procurement"
)

// GormLineItemRepository implements LineItemRepository using GORM
type GormLineItemRepository struct {
	db *gorm.DB
}

// NewGormLineItemRepository creates a new GormLineItemRepository
func NewGormLineItemRepository(db *gorm.DB) *GormLineItemRepository {
	return &GormLineItemRepository{db: db}
}

// FindByOrderAndID finds a line item scoped to one order
func (r *GormLineItemRepository) FindByOrderAndID(ctx context.Context, orderID, id int64) (*procurement.LineItem, error) {
	var item procurement.LineItem
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND id = ?", orderID, id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, procurement.NewLineItemNotFoundError(id)
		}
		return nil, err
	}
	return &item, nil
}

// FindByOrderID lists the line items of an order
func (r *GormLineItemRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*procurement.LineItem, error) {
	var items []*procurement.LineItem
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a line item
func (r *GormLineItemRepository) Save(ctx context.Context, item *procurement.LineItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteExcept prunes the order's rows whose ids are not in keep
func (r *GormLineItemRepository) DeleteExcept(ctx context.Context, orderID int64, keep []int64) error {
	query := r.db.WithContext(ctx).Where("order_id = ?", orderID)
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}
	return query.Delete(&procurement.LineItem{}).Error
}
