package catalog

import (
	"context"
	"errors"

	"github.com/appsmart/backend/internal/domain/catalog"
	"github.com/appsmart/backend/internal/domain/partner"
	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/appsmart/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CustomerFinder resolves the owner of a product being created.
// FindCustomer returns shared.ErrNotFound when the customer does not exist.
type CustomerFinder interface {
	FindCustomer(ctx context.Context, id string) (*partner.Customer, error)
}

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	customers   CustomerFinder
	logger      *zap.Logger
	clock       shared.Clock
}

// NewProductService creates a new ProductService. A nil clock uses the system clock.
func NewProductService(productRepo catalog.ProductRepository, customers CustomerFinder, log *zap.Logger, clock shared.Clock) *ProductService {
	if log == nil {
		log = zap.NewNop()
	}
	if clock == nil {
		clock = shared.SystemClock()
	}
	return &ProductService{
		productRepo: productRepo,
		customers:   customers,
		logger:      log.Named("product_service"),
		clock:       clock,
	}
}

// FindProduct returns the product with the given id, or shared.ErrNotFound
func (s *ProductService) FindProduct(ctx context.Context, id string) (*catalog.Product, error) {
	productID, err := shared.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.productRepo.FindByID(ctx, productID)
}

// CreateProductForCustomer assigns the owner, stamps and persists a new product
func (s *ProductService) CreateProductForCustomer(ctx context.Context, customerID string, product *catalog.Product) (*catalog.Product, error) {
	customer, err := s.customers.FindCustomer(ctx, customerID)
	if errors.Is(err, shared.ErrNotFound) {
		failure := shared.NewInvalidArgumentError("No Customer found with id = '%s'", customerID)
		logger.WithLogger(ctx, s.logger).Info("createProductForCustomer >>> " + failure.Message)
		return nil, failure
	}
	if err != nil {
		return nil, err
	}

	if err := product.AssignOwner(customer.ID); err != nil {
		return nil, err
	}
	product.Stamp(s.clock.Now())

	logger.WithLogger(ctx, s.logger).Info("createProductForCustomer :: persisting new product",
		zap.String("customer_id", customer.ID.String()),
		zap.String("product_id", product.ID.String()),
	)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct merges req onto an existing product and persists it
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*catalog.Product, error) {
	productID, err := shared.ParseID(id)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, shared.ErrNotFound) {
		failure := shared.NewInvalidArgumentError("Product with id = '%s' not found!", id)
		logger.WithLogger(ctx, s.logger).Info("updateProduct >>> " + failure.Message)
		return nil, failure
	}
	if err != nil {
		return nil, err
	}

	if err := MergeProduct(product, req, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product; a missing product is not an error
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	productID, err := shared.ParseID(id)
	if err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, productID)
}

// FindAllCustomerProducts returns a zero-based page of the customer's products
func (s *ProductService) FindAllCustomerProducts(ctx context.Context, customerID string, page, size int) (shared.Page[catalog.Product], error) {
	ownerID, err := shared.ParseID(customerID)
	if err != nil {
		return shared.Page[catalog.Product]{}, err
	}
	req, err := shared.NewPageRequest(page, size)
	if err != nil {
		return shared.Page[catalog.Product]{}, err
	}
	return s.productRepo.FindByCustomer(ctx, ownerID, req)
}

// ListCustomerProducts returns every product of the customer, oldest first
func (s *ProductService) ListCustomerProducts(ctx context.Context, customerID string) ([]catalog.Product, error) {
	ownerID, err := shared.ParseID(customerID)
	if err != nil {
		return nil, err
	}
	return s.productRepo.FindAllByCustomer(ctx, ownerID)
}
