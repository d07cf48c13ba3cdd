package procurement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/procure/backend/internal/domain/shared"
)

// LineItem is a child row owned by one purchase order. It has no
// lifecycle of its own: rows are created, rewritten and pruned only
// through the order they belong to.
type LineItem struct {
	shared.BaseEntity
	OrderID         int64           `gorm:"not null;index"`
	ItemName        string          `gorm:"type:varchar(256);not null"`
	Quantity        int             `gorm:"not null"`
	PriceWithoutTax decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TaxName         string          `gorm:"type:varchar(124);not null"`
	TaxTotal        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LineTotal       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName returns the table name for GORM
func (LineItem) TableName() string {
	return "line_items"
}

// NewLineItem creates a line item for an order. LineTotal is derived,
// never taken from the caller.
func NewLineItem(orderID int64, itemName string, quantity int, priceWithoutTax decimal.Decimal, taxName string, taxTotal decimal.Decimal) (*LineItem, error) {
	if err := validateLineItem(itemName, quantity, priceWithoutTax, taxTotal); err != nil {
		return nil, err
	}

	item := &LineItem{
		BaseEntity:      shared.NewBaseEntity(),
		OrderID:         orderID,
		ItemName:        itemName,
		Quantity:        quantity,
		PriceWithoutTax: priceWithoutTax,
		TaxName:         taxName,
		TaxTotal:        taxTotal,
	}
	item.recalculateLineTotal()

	return item, nil
}

// Update rewrites every mutable field with the submitted values and
// rederives the line total.
func (li *LineItem) Update(itemName string, quantity int, priceWithoutTax decimal.Decimal, taxName string, taxTotal decimal.Decimal) error {
	if err := validateLineItem(itemName, quantity, priceWithoutTax, taxTotal); err != nil {
		return err
	}

	li.ItemName = itemName
	li.Quantity = quantity
	li.PriceWithoutTax = priceWithoutTax
	li.TaxName = taxName
	li.TaxTotal = taxTotal
	li.recalculateLineTotal()
	li.UpdatedAt = time.Now()

	return nil
}

func (li *LineItem) recalculateLineTotal() {
	li.LineTotal = li.PriceWithoutTax.Add(li.TaxTotal)
}

func validateLineItem(itemName string, quantity int, priceWithoutTax, taxTotal decimal.Decimal) error {
	if itemName == "" {
		return shared.NewDomainError("INVALID_LINE_ITEM", "Line item name cannot be empty")
	}
	if len(itemName) > 256 {
		return shared.NewDomainError("INVALID_LINE_ITEM", "Line item name cannot exceed 256 characters")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_LINE_ITEM", "Line item quantity must be positive")
	}
	if priceWithoutTax.IsNegative() {
		return shared.NewDomainError("INVALID_LINE_ITEM", "Line item price cannot be negative")
	}
	if taxTotal.IsNegative() {
		return shared.NewDomainError("INVALID_LINE_ITEM", "Line item tax cannot be negative")
	}
	return nil
}
