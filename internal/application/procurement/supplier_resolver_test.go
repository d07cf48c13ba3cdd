package procurement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/shared"
)

func existingSupplier(t *testing.T, id int64, name, email string) *partner.Supplier {
	t.Helper()
	supplier, err := partner.NewSupplier(name, email)
	assert.NoError(t, err)
	supplier.ID = id
	return supplier
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestSupplierResolverResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("id match wins and gets overwritten with submitted values", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		repo.On("FindByID", ctx, int64(15)).Return(existingSupplier(t, 15, "old name", "old@acme.test"), nil)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Supplier")).Return(nil)

		supplier, err := NewSupplierResolver(repo).Resolve(ctx, SupplierInput{
			ID:    int64Ptr(15),
			Name:  "another supplier",
			Email: "email@email.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(15), supplier.ID)
		assert.Equal(t, "another supplier", supplier.Name)
		assert.Equal(t, "email@email.com", supplier.Email)
		repo.AssertNotCalled(t, "FindByNameAndEmail", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stale id falls through to name and email match", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		repo.On("FindByID", ctx, int64(99)).Return(nil, shared.ErrNotFound)
		repo.On("FindByNameAndEmail", ctx, "my supplier", "email@email.com").Return(existingSupplier(t, 7, "my supplier", "email@email.com"), nil)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Supplier")).Return(nil)

		supplier, err := NewSupplierResolver(repo).Resolve(ctx, SupplierInput{
			ID:    int64Ptr(99),
			Name:  "my supplier",
			Email: "email@email.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), supplier.ID)
	})

	t.Run("no match creates a supplier", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		repo.On("FindByNameAndEmail", ctx, "my supplier", "email@email.com").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Supplier")).Return(nil)

		supplier, err := NewSupplierResolver(repo).Resolve(ctx, SupplierInput{
			Name:  "my supplier",
			Email: "email@email.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "my supplier", supplier.Name)
		repo.AssertCalled(t, "Save", ctx, mock.AnythingOfType("*partner.Supplier"))
	})

	t.Run("nil id skips the id lookup", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		repo.On("FindByNameAndEmail", ctx, "my supplier", "email@email.com").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Supplier")).Return(nil)

		_, err := NewSupplierResolver(repo).Resolve(ctx, SupplierInput{
			Name:  "my supplier",
			Email: "email@email.com",
		})

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("repository failure on id lookup propagates", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		dbErr := errors.New("connection reset")
		repo.On("FindByID", ctx, int64(15)).Return(nil, dbErr)

		_, err := NewSupplierResolver(repo).Resolve(ctx, SupplierInput{
			ID:    int64Ptr(15),
			Name:  "my supplier",
			Email: "email@email.com",
		})

		assert.ErrorIs(t, err, dbErr)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("invalid submitted email fails resolution", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		repo.On("FindByNameAndEmail", ctx, "my supplier", "").Return(nil, shared.ErrNotFound)

		_, err := NewSupplierResolver(repo).Resolve(ctx, SupplierInput{
			Name:  "my supplier",
			Email: "",
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
