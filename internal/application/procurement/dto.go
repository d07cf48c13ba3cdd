package procurement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/procurement"
)

// ==================== Purchase Order DTOs ====================

// SupplierInput identifies or describes the supplier of an order. The
// id is optional; name and email always accompany it.
type SupplierInput struct {
	ID    *int64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email" binding:"required"`
}

// LineItemInput represents one submitted line of an order. The id is
// only meaningful on update, where it targets an existing row.
type LineItemInput struct {
	ID              *int64          `json:"id"`
	ItemName        string          `json:"item_name" binding:"required"`
	Quantity        int             `json:"quantity" binding:"required"`
	PriceWithoutTax decimal.Decimal `json:"price_without_tax" binding:"required"`
	TaxName         string          `json:"tax_name" binding:"required"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
}

// SavePurchaseOrderRequest is the full submitted state of an order,
// used by both create and update.
type SavePurchaseOrderRequest struct {
	Supplier  SupplierInput   `json:"supplier" binding:"required"`
	LineItems []LineItemInput `json:"line_items" binding:"required"`
}

// OrderListFilter represents filter options for the order list
type OrderListFilter struct {
	SupplierName string `form:"supplier_name"`
	ItemName     string `form:"item_name"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LineItemResponse represents a line item in API responses. Monetary
// fields serialize as fixed two decimal place strings.
type LineItemResponse struct {
	ItemName        string `json:"item_name"`
	Quantity        int    `json:"quantity"`
	PriceWithoutTax string `json:"price_without_tax"`
	TaxName         string `json:"tax_name"`
	TaxTotal        string `json:"tax_total"`
	LineTotal       string `json:"line_total"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID            int64              `json:"id"`
	Supplier      SupplierResponse   `json:"supplier"`
	OrderTime     time.Time          `json:"order_time"`
	OrderNumber   int64              `json:"order_number"`
	TotalQuantity int                `json:"total_quantity"`
	TotalAmount   string             `json:"total_amount"`
	TotalTax      string             `json:"total_tax"`
	LineItems     []LineItemResponse `json:"line_items"`
}

// ToSupplierResponse converts a domain Supplier to a response DTO
func ToSupplierResponse(supplier *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:    supplier.ID,
		Name:  supplier.Name,
		Email: supplier.Email,
	}
}

// ToLineItemResponse converts a domain LineItem to a response DTO
func ToLineItemResponse(item *procurement.LineItem) LineItemResponse {
	return LineItemResponse{
		ItemName:        item.ItemName,
		Quantity:        item.Quantity,
		PriceWithoutTax: item.PriceWithoutTax.StringFixed(2),
		TaxName:         item.TaxName,
		TaxTotal:        item.TaxTotal.StringFixed(2),
		LineTotal:       item.LineTotal.StringFixed(2),
	}
}

// ToPurchaseOrderResponse converts a domain order and its line items
// to a response DTO. The items are passed separately so create and
// update can echo rows in submitted order.
func ToPurchaseOrderResponse(order *procurement.PurchaseOrder, items []*procurement.LineItem) PurchaseOrderResponse {
	lineItems := make([]LineItemResponse, len(items))
	for i, item := range items {
		lineItems[i] = ToLineItemResponse(item)
	}

	var supplier SupplierResponse
	if order.Supplier != nil {
		supplier = ToSupplierResponse(order.Supplier)
	} else {
		supplier.ID = order.SupplierID
	}

	return PurchaseOrderResponse{
		ID:            order.ID,
		Supplier:      supplier,
		OrderTime:     order.OrderTime,
		OrderNumber:   order.OrderNumber,
		TotalQuantity: order.TotalQuantity,
		TotalAmount:   order.TotalAmount.StringFixed(2),
		TotalTax:      order.TotalTax.StringFixed(2),
		LineItems:     lineItems,
	}
}

func toDrafts(inputs []LineItemInput) []procurement.LineItemDraft {
	drafts := make([]procurement.LineItemDraft, len(inputs))
	for i, input := range inputs {
		drafts[i] = procurement.LineItemDraft{
			ID:              input.ID,
			ItemName:        input.ItemName,
			Quantity:        input.Quantity,
			PriceWithoutTax: input.PriceWithoutTax,
			TaxName:         input.TaxName,
			TaxTotal:        input.TaxAmount,
		}
	}
	return drafts
}
