package partner

import (
	"context"
	"errors"

	catalogapp "github.com/appsmart/backend/internal/application/catalog"
	"github.com/appsmart/backend/internal/domain/catalog"
	"github.com/appsmart/backend/internal/domain/partner"
	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/appsmart/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
	clock        shared.Clock
}

// NewCustomerService creates a new CustomerService. A nil clock uses the system clock.
func NewCustomerService(customerRepo partner.CustomerRepository, log *zap.Logger, clock shared.Clock) *CustomerService {
	if log == nil {
		log = zap.NewNop()
	}
	if clock == nil {
		clock = shared.SystemClock()
	}
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       log.Named("customer_service"),
		clock:        clock,
	}
}

// FindCustomer returns the customer with its products, or shared.ErrNotFound
func (s *CustomerService) FindCustomer(ctx context.Context, id string) (*partner.Customer, error) {
	customerID, err := shared.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.customerRepo.FindByID(ctx, customerID)
}

// CreateCustomer assigns an id and creation time and persists the customer
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *partner.Customer) (*partner.Customer, error) {
	customer.Stamp(s.clock.Now())
	if customer.Products == nil {
		customer.Products = make([]catalog.Product, 0)
	}

	logger.WithLogger(ctx, s.logger).Info("createCustomer :: persisting new customer", zap.String("customer_id", customer.ID.String()))
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetAllCustomers returns a zero-based page of customers
func (s *CustomerService) GetAllCustomers(ctx context.Context, page, size int) (shared.Page[partner.Customer], error) {
	req, err := shared.NewPageRequest(page, size)
	if err != nil {
		return shared.Page[partner.Customer]{}, err
	}
	return s.customerRepo.FindPage(ctx, req)
}

// RemoveCustomer deletes the customer and its products; a missing customer is not an error
func (s *CustomerService) RemoveCustomer(ctx context.Context, id string) error {
	customerID, err := shared.ParseID(id)
	if err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, customerID)
}

// UpdateCustomer merges req onto an existing customer and persists it.
// Concurrent updates of the same customer are last-write-wins.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (*partner.Customer, error) {
	customerID, err := shared.ParseID(id)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if errors.Is(err, shared.ErrNotFound) {
		failure := shared.NewInvalidArgumentError("Customer with id = '%s' not found!", id)
		logger.WithLogger(ctx, s.logger).Info("updateCustomer >>> " + failure.Message)
		return nil, failure
	}
	if err != nil {
		return nil, err
	}

	if err := MergeCustomer(customer, req, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// CustomerService resolves product owners for the product service
var _ catalogapp.CustomerFinder = (*CustomerService)(nil)
