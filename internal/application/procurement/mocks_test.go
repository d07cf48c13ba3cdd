package procurement

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/procurement"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockSupplierRepository is a mock implementation of SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id int64) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByNameAndEmail(ctx context.Context, name, email string) (*partner.Supplier, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

// MockPurchaseOrderRepository is a mock implementation of PurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, id int64) (*procurement.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByFilter(ctx context.Context, filter procurement.OrderFilter) ([]*procurement.PurchaseOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*procurement.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, order *procurement.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Delete(ctx context.Context, order *procurement.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockLineItemRepository is a mock implementation of LineItemRepository
type MockLineItemRepository struct {
	mock.Mock
}

func (m *MockLineItemRepository) FindByOrderAndID(ctx context.Context, orderID, id int64) (*procurement.LineItem, error) {
	args := m.Called(ctx, orderID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*procurement.LineItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*procurement.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) Save(ctx context.Context, item *procurement.LineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLineItemRepository) DeleteExcept(ctx context.Context, orderID int64, keep []int64) error {
	args := m.Called(ctx, orderID, keep)
	return args.Error(0)
}

// fakeUnitOfWork hands the callback a fixed repository set with no
// transaction underneath
type fakeUnitOfWork struct {
	repos procurement.Repositories
}

func (f *fakeUnitOfWork) Execute(ctx context.Context, fn func(repos procurement.Repositories) error) error {
	return fn(f.repos)
}
