package procurement

import (
	"context"

	"github.com/procure/backend/internal/domain/procurement"
)

// LineItemReconciler rewrites an order's line items to match the
// submitted drafts. Drafts with an id update the targeted row, drafts
// without one create a row, and rows the payload no longer mentions
// are pruned.
type LineItemReconciler struct {
	items procurement.LineItemRepository
}

// NewLineItemReconciler creates a new LineItemReconciler
func NewLineItemReconciler(items procurement.LineItemRepository) *LineItemReconciler {
	return &LineItemReconciler{items: items}
}

// Reconcile applies the drafts to the order's rows and returns the
// surviving items in submitted order. A draft id that does not belong
// to the order fails the whole reconciliation.
func (r *LineItemReconciler) Reconcile(ctx context.Context, orderID int64, drafts []procurement.LineItemDraft) ([]*procurement.LineItem, error) {
	keep := make([]int64, 0, len(drafts))
	result := make([]*procurement.LineItem, 0, len(drafts))

	for _, draft := range drafts {
		var item *procurement.LineItem
		var err error
		if draft.ID != nil {
			item, err = r.updateExisting(ctx, orderID, draft)
		} else {
			item, err = r.createNew(ctx, orderID, draft)
		}
		if err != nil {
			return nil, err
		}
		keep = append(keep, item.ID)
		result = append(result, item)
	}

	if err := r.items.DeleteExcept(ctx, orderID, keep); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateAll inserts every draft as a new row, ignoring any submitted
// ids. Used when the order itself is new and has no rows to target.
func (r *LineItemReconciler) CreateAll(ctx context.Context, orderID int64, drafts []procurement.LineItemDraft) ([]*procurement.LineItem, error) {
	result := make([]*procurement.LineItem, 0, len(drafts))
	for _, draft := range drafts {
		item, err := r.createNew(ctx, orderID, draft)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func (r *LineItemReconciler) updateExisting(ctx context.Context, orderID int64, draft procurement.LineItemDraft) (*procurement.LineItem, error) {
	item, err := r.items.FindByOrderAndID(ctx, orderID, *draft.ID)
	if err != nil {
		return nil, err
	}
	if err := item.Update(draft.ItemName, draft.Quantity, draft.PriceWithoutTax, draft.TaxName, draft.TaxTotal); err != nil {
		return nil, err
	}
	if err := r.items.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *LineItemReconciler) createNew(ctx context.Context, orderID int64, draft procurement.LineItemDraft) (*procurement.LineItem, error) {
	item, err := procurement.NewLineItem(orderID, draft.ItemName, draft.Quantity, draft.PriceWithoutTax, draft.TaxName, draft.TaxTotal)
	if err != nil {
		return nil, err
	}
	if err := r.items.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
