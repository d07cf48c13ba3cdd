package partner

import "context"

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by its ID
	FindByID(ctx context.Context, id int64) (*Supplier, error)

	// FindByNameAndEmail finds the first supplier with an exact (name, email) match
	FindByNameAndEmail(ctx context.Context, name, email string) (*Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error
}
