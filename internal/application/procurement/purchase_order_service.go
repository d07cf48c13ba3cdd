package procurement

import (
	"context"

	"github.com/procure/backend/internal/domain/procurement"
)

// PurchaseOrderService handles purchase order business operations.
// Writes run through the unit of work so supplier resolution, the
// order row and line item reconciliation commit or roll back as one.
type PurchaseOrderService struct {
	uow    procurement.UnitOfWork
	orders procurement.PurchaseOrderRepository
}

// NewPurchaseOrderService creates a new PurchaseOrderService. The
// orders repository serves reads; writes get transaction-scoped
// repositories from the unit of work.
func NewPurchaseOrderService(uow procurement.UnitOfWork, orders procurement.PurchaseOrderRepository) *PurchaseOrderService {
	return &PurchaseOrderService{
		uow:    uow,
		orders: orders,
	}
}

// Create creates a purchase order together with its supplier and line
// items. Totals are derived from the submitted payload before any row
// is written. Submitted line item ids are ignored here; a new order
// has no rows to target.
func (s *PurchaseOrderService) Create(ctx context.Context, req SavePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	drafts := toDrafts(req.LineItems)
	totals := procurement.ComputeTotals(drafts)

	var response PurchaseOrderResponse
	err := s.uow.Execute(ctx, func(repos procurement.Repositories) error {
		supplier, err := NewSupplierResolver(repos.Suppliers).Resolve(ctx, req.Supplier)
		if err != nil {
			return err
		}

		order, err := procurement.NewPurchaseOrder(supplier, totals)
		if err != nil {
			return err
		}
		if err := repos.Orders.Save(ctx, order); err != nil {
			return err
		}

		items, err := NewLineItemReconciler(repos.LineItems).CreateAll(ctx, order.ID, drafts)
		if err != nil {
			return err
		}

		response = ToPurchaseOrderResponse(order, items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByID retrieves a purchase order with its supplier and line items
func (s *PurchaseOrderService) GetByID(ctx context.Context, id int64) (*PurchaseOrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order, itemPointers(order.Items))
	return &response, nil
}

// Update replaces the submitted state of an order: supplier is
// re-resolved, totals are rederived from the payload, and line items
// are reconciled against the submitted drafts.
func (s *PurchaseOrderService) Update(ctx context.Context, id int64, req SavePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	drafts := toDrafts(req.LineItems)
	totals := procurement.ComputeTotals(drafts)

	var response PurchaseOrderResponse
	err := s.uow.Execute(ctx, func(repos procurement.Repositories) error {
		order, err := repos.Orders.FindByID(ctx, id)
		if err != nil {
			return err
		}

		supplier, err := NewSupplierResolver(repos.Suppliers).Resolve(ctx, req.Supplier)
		if err != nil {
			return err
		}

		if err := order.Revise(supplier, totals); err != nil {
			return err
		}
		if err := repos.Orders.Save(ctx, order); err != nil {
			return err
		}

		items, err := NewLineItemReconciler(repos.LineItems).Reconcile(ctx, order.ID, drafts)
		if err != nil {
			return err
		}

		response = ToPurchaseOrderResponse(order, items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete removes a purchase order and its line items. The supplier
// stays; it may be referenced by other orders.
func (s *PurchaseOrderService) Delete(ctx context.Context, id int64) error {
	return s.uow.Execute(ctx, func(repos procurement.Repositories) error {
		order, err := repos.Orders.FindByID(ctx, id)
		if err != nil {
			return err
		}
		return repos.Orders.Delete(ctx, order)
	})
}

// List retrieves purchase orders matching the filter, each with its
// supplier and line items loaded
func (s *PurchaseOrderService) List(ctx context.Context, filter OrderListFilter) ([]PurchaseOrderResponse, error) {
	orders, err := s.orders.FindByFilter(ctx, procurement.OrderFilter{
		SupplierName: filter.SupplierName,
		ItemName:     filter.ItemName,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]PurchaseOrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = ToPurchaseOrderResponse(order, itemPointers(order.Items))
	}
	return responses, nil
}

func itemPointers(items []procurement.LineItem) []*procurement.LineItem {
	pointers := make([]*procurement.LineItem, len(items))
	for i := range items {
		pointers[i] = &items[i]
	}
	return pointers
}
