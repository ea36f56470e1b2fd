package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/appsmart/backend/internal/domain/catalog"
	"github.com/appsmart/backend/internal/domain/partner"
	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/appsmart/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, page shared.PageRequest) (shared.Page[catalog.Product], error) {
	args := m.Called(ctx, customerID, page)
	return args.Get(0).(shared.Page[catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) FindAllByCustomer(ctx context.Context, customerID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerFinder is a mock implementation of CustomerFinder
type MockCustomerFinder struct {
	mock.Mock
}

func (m *MockCustomerFinder) FindCustomer(ctx context.Context, id string) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

var fixedNow = time.Date(2026, 6, 15, 9, 30, 0, 0, time.UTC)

func newTestProductService() (*ProductService, *MockProductRepository, *MockCustomerFinder) {
	repo := new(MockProductRepository)
	customers := new(MockCustomerFinder)
	clock := shared.ClockFunc(func() time.Time { return fixedNow })
	return NewProductService(repo, customers, nil, clock), repo, customers
}

func newStoredProduct(t *testing.T, ownerID uuid.UUID) *catalog.Product {
	t.Helper()
	description := "original"
	p, err := catalog.NewProduct("Widget", &description, decimal.RequireFromString("10.00"), false)
	require.NoError(t, err)
	require.NoError(t, p.AssignOwner(ownerID))
	p.Stamp(fixedNow.Add(-24 * time.Hour))
	return p
}

func TestProductService_MalformedIDs(t *testing.T) {
	malformed := []string{"X", "", "123", "not-a-uuid", "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"}

	for _, id := range malformed {
		t.Run(id, func(t *testing.T) {
			svc, repo, _ := newTestProductService()
			ctx := context.Background()
			expected := "Invalid UUID string: " + id

			_, err := svc.FindProduct(ctx, id)
			assert.EqualError(t, err, expected)
			assert.ErrorIs(t, err, shared.ErrInvalidArgument)

			_, err = svc.UpdateProduct(ctx, id, UpdateProductRequest{})
			assert.EqualError(t, err, expected)

			assert.EqualError(t, svc.DeleteProduct(ctx, id), expected)

			_, err = svc.FindAllCustomerProducts(ctx, id, 0, 10)
			assert.EqualError(t, err, expected)

			_, err = svc.ListCustomerProducts(ctx, id)
			assert.EqualError(t, err, expected)

			repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "FindByCustomer", mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "FindAllByCustomer", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

func TestProductService_FindProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored product", func(t *testing.T) {
		svc, repo, _ := newTestProductService()
		stored := newStoredProduct(t, uuid.New())
		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)

		found, err := svc.FindProduct(ctx, stored.ID.String())

		require.NoError(t, err)
		assert.Same(t, stored, found)
	})

	t.Run("absent product is ErrNotFound", func(t *testing.T) {
		svc, repo, _ := newTestProductService()
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.FindProduct(ctx, id.String())

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductService_CreateProductForCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns owner and stamps creation time", func(t *testing.T) {
		svc, repo, customers := newTestProductService()
		owner, err := partner.NewCustomer("Owner", false)
		require.NoError(t, err)
		owner.Stamp(fixedNow.Add(-time.Hour))
		customers.On("FindCustomer", ctx, owner.ID.String()).Return(owner, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		product, err := catalog.NewProduct("Gadget", nil, decimal.RequireFromString("3.5"), false)
		require.NoError(t, err)

		created, err := svc.CreateProductForCustomer(ctx, owner.ID.String(), product)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, owner.ID, created.CustomerID)
		assert.Equal(t, fixedNow, created.CreatedAt)
		assert.Nil(t, created.ModifiedAt)
		repo.AssertExpectations(t)
	})

	t.Run("missing customer fails without writing", func(t *testing.T) {
		svc, repo, customers := newTestProductService()
		customers.On("FindCustomer", ctx, "X").Return(nil, shared.ErrNotFound)

		product, err := catalog.NewProduct("Gadget", nil, decimal.NewFromInt(1), false)
		require.NoError(t, err)

		_, err = svc.CreateProductForCustomer(ctx, "X", product)

		assert.EqualError(t, err, "No Customer found with id = 'X'")
		assert.ErrorIs(t, err, shared.ErrInvalidArgument)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("propagates lookup failures", func(t *testing.T) {
		svc, repo, customers := newTestProductService()
		customers.On("FindCustomer", ctx, "bad").Return(nil, shared.NewInvalidArgumentError("Invalid UUID string: bad"))

		product, err := catalog.NewProduct("Gadget", nil, decimal.NewFromInt(1), false)
		require.NoError(t, err)

		_, err = svc.CreateProductForCustomer(ctx, "bad", product)

		assert.EqualError(t, err, "Invalid UUID string: bad")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("merges present fields only", func(t *testing.T) {
		svc, repo, _ := newTestProductService()
		ownerID := uuid.New()
		stored := newStoredProduct(t, ownerID)
		createdAt := stored.CreatedAt
		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)
		repo.On("Save", ctx, stored).Return(nil)

		title := "NEW"
		updated, err := svc.UpdateProduct(ctx, stored.ID.String(), UpdateProductRequest{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "NEW", updated.Title)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "original", *updated.Description)
		assert.True(t, decimal.RequireFromString("10").Equal(updated.Price))
		assert.Equal(t, ownerID, updated.CustomerID)
		assert.Equal(t, createdAt, updated.CreatedAt)
		require.NotNil(t, updated.ModifiedAt)
		assert.True(t, updated.ModifiedAt.After(updated.CreatedAt))
		repo.AssertExpectations(t)
	})

	t.Run("missing product is an invalid argument", func(t *testing.T) {
		svc, repo, _ := newTestProductService()
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.UpdateProduct(ctx, id.String(), UpdateProductRequest{})

		assert.EqualError(t, err, "Product with id = '"+id.String()+"' not found!")
		assert.ErrorIs(t, err, shared.ErrInvalidArgument)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		svc, repo, _ := newTestProductService()
		stored := newStoredProduct(t, uuid.New())
		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)

		blank := "  "
		_, err := svc.UpdateProduct(ctx, stored.ID.String(), UpdateProductRequest{Title: &blank})

		assert.ErrorIs(t, err, shared.ErrInvalidArgument)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestProductService()
	id := uuid.New()
	repo.On("Delete", ctx, id).Return(nil)

	require.NoError(t, svc.DeleteProduct(ctx, id.String()))
	repo.AssertExpectations(t)
}

func TestProductService_FindAllCustomerProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates page request", func(t *testing.T) {
		svc, repo, _ := newTestProductService()
		ownerID := uuid.New()
		req := shared.PageRequest{Page: 1, Size: 5}
		page := shared.NewPage([]catalog.Product{*newStoredProduct(t, ownerID)}, req, 6)
		repo.On("FindByCustomer", ctx, ownerID, req).Return(page, nil)

		result, err := svc.FindAllCustomerProducts(ctx, ownerID.String(), 1, 5)

		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalPages)
		assert.Len(t, result.Content, 1)
	})

	t.Run("rejects invalid bounds", func(t *testing.T) {
		svc, repo, _ := newTestProductService()

		_, err := svc.FindAllCustomerProducts(ctx, uuid.NewString(), -1, 5)
		assert.EqualError(t, err, "Page index must not be less than zero")

		_, err = svc.FindAllCustomerProducts(ctx, uuid.NewString(), 0, 0)
		assert.EqualError(t, err, "Page size must not be less than one")

		repo.AssertNotCalled(t, "FindByCustomer", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProductService_ListCustomerProducts(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestProductService()
	ownerID := uuid.New()
	products := []catalog.Product{*newStoredProduct(t, ownerID)}
	repo.On("FindAllByCustomer", ctx, ownerID).Return(products, nil)

	result, err := svc.ListCustomerProducts(ctx, ownerID.String())

	require.NoError(t, err)
	assert.Equal(t, products, result)
}

func TestProductService_LogsWithRequestContext(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	repo := new(MockProductRepository)
	customers := new(MockCustomerFinder)
	svc := NewProductService(repo, customers, zap.New(core), nil)

	ctx, _ := logger.WithRequestID(context.Background(), zap.NewNop(), "req-42")
	ctx, _ = logger.WithUsername(ctx, zap.NewNop(), "alice")
	missing := uuid.NewString()
	customers.On("FindCustomer", ctx, missing).Return(nil, shared.ErrNotFound)

	_, err := svc.CreateProductForCustomer(ctx, missing, &catalog.Product{})
	require.ErrorIs(t, err, shared.ErrInvalidArgument)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "product_service", logs[0].LoggerName)
	assert.Equal(t, "createProductForCustomer >>> No Customer found with id = '"+missing+"'", logs[0].Message)
	fields := logs[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "alice", fields["username"])
}
