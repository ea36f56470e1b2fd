package handler

import (
	"context"

	catalogapp "github.com/appsmart/backend/internal/application/catalog"
	partnerapp "github.com/appsmart/backend/internal/application/partner"
	"github.com/appsmart/backend/internal/domain/catalog"
	"github.com/appsmart/backend/internal/domain/partner"
	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockCustomerManager implements CustomerManager for testing
type MockCustomerManager struct {
	mock.Mock
}

func (m *MockCustomerManager) FindCustomer(ctx context.Context, id string) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerManager) CreateCustomer(ctx context.Context, customer *partner.Customer) (*partner.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerManager) GetAllCustomers(ctx context.Context, page, size int) (shared.Page[partner.Customer], error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).(shared.Page[partner.Customer]), args.Error(1)
}

func (m *MockCustomerManager) RemoveCustomer(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerManager) UpdateCustomer(ctx context.Context, id string, req partnerapp.UpdateCustomerRequest) (*partner.Customer, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

// MockProductManager implements ProductManager for testing
type MockProductManager struct {
	mock.Mock
}

func (m *MockProductManager) FindProduct(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductManager) CreateProductForCustomer(ctx context.Context, customerID string, product *catalog.Product) (*catalog.Product, error) {
	args := m.Called(ctx, customerID, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductManager) UpdateProduct(ctx context.Context, id string, req catalogapp.UpdateProductRequest) (*catalog.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductManager) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductManager) FindAllCustomerProducts(ctx context.Context, customerID string, page, size int) (shared.Page[catalog.Product], error) {
	args := m.Called(ctx, customerID, page, size)
	return args.Get(0).(shared.Page[catalog.Product]), args.Error(1)
}

// MockTokenIssuer implements TokenIssuer for testing
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(username string) (string, error) {
	args := m.Called(username)
	return args.String(0), args.Error(1)
}
