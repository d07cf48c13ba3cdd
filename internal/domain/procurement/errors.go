package procurement

import "fmt"

// PurchaseOrderNotFoundError reports a lookup miss for an order id.
type PurchaseOrderNotFoundError struct {
	ID int64
}

func (e *PurchaseOrderNotFoundError) Error() string {
	return fmt.Sprintf("Purchase id not found for id %d", e.ID)
}

// NewPurchaseOrderNotFoundError creates a not found error for an order id
func NewPurchaseOrderNotFoundError(id int64) *PurchaseOrderNotFoundError {
	return &PurchaseOrderNotFoundError{ID: id}
}

// LineItemNotFoundError reports a submitted line item id that does not
// belong to the order under revision.
type LineItemNotFoundError struct {
	ID int64
}

func (e *LineItemNotFoundError) Error() string {
	return fmt.Sprintf("Line Item id not found for id %d", e.ID)
}

// NewLineItemNotFoundError creates a not found error for a line item id
func NewLineItemNotFoundError(id int64) *LineItemNotFoundError {
	return &LineItemNotFoundError{ID: id}
}
