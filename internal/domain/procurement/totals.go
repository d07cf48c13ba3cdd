package procurement

import "github.com/shopspring/decimal"

// LineItemDraft is one submitted line before reconciliation. A nil ID
// means the caller is describing a new row; a non-nil ID targets an
// existing row of the order.
type LineItemDraft struct {
	ID              *int64
	ItemName        string
	Quantity        int
	PriceWithoutTax decimal.Decimal
	TaxName         string
	TaxTotal        decimal.Decimal
}

// OrderTotals holds the denormalized sums stored on the order row.
type OrderTotals struct {
	Quantity int
	Amount   decimal.Decimal
	Tax      decimal.Decimal
}

// ComputeTotals derives order totals from the submitted drafts. The
// sums come from the payload as given, not from persisted rows, so a
// revision and its totals can never disagree.
func ComputeTotals(drafts []LineItemDraft) OrderTotals {
	totals := OrderTotals{
		Amount: decimal.Zero,
		Tax:    decimal.Zero,
	}
	for _, draft := range drafts {
		totals.Quantity += draft.Quantity
		totals.Amount = totals.Amount.Add(draft.PriceWithoutTax).Add(draft.TaxTotal)
		totals.Tax = totals.Tax.Add(draft.TaxTotal)
	}
	return totals
}
