package procurement

import (
	"context"
	"errors"

	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/shared"
)

// SupplierResolver maps a submitted supplier block onto exactly one
// persisted supplier row. Resolution order: id lookup, then exact
// name and email match, then create. Whichever row wins gets its
// name and email overwritten with the submitted values.
type SupplierResolver struct {
	suppliers partner.SupplierRepository
}

// NewSupplierResolver creates a new SupplierResolver
func NewSupplierResolver(suppliers partner.SupplierRepository) *SupplierResolver {
	return &SupplierResolver{suppliers: suppliers}
}

// Resolve finds or creates the supplier for the submitted block. A
// stale or unknown id is not an error; resolution falls through to
// the name and email match.
func (r *SupplierResolver) Resolve(ctx context.Context, input SupplierInput) (*partner.Supplier, error) {
	supplier, err := r.lookup(ctx, input)
	if err != nil {
		return nil, err
	}

	if supplier != nil {
		if err := supplier.Update(input.Name, input.Email); err != nil {
			return nil, err
		}
		if err := r.suppliers.Save(ctx, supplier); err != nil {
			return nil, err
		}
		return supplier, nil
	}

	supplier, err = partner.NewSupplier(input.Name, input.Email)
	if err != nil {
		return nil, err
	}
	if err := r.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (r *SupplierResolver) lookup(ctx context.Context, input SupplierInput) (*partner.Supplier, error) {
	if input.ID != nil {
		supplier, err := r.suppliers.FindByID(ctx, *input.ID)
		if err == nil {
			return supplier, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	supplier, err := r.suppliers.FindByNameAndEmail(ctx, input.Name, input.Email)
	if err == nil {
		return supplier, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	return nil, nil
}
