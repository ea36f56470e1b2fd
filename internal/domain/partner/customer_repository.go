package partner

import (
	"context"

	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence.
// Customers are always returned with their products loaded.
type CustomerRepository interface {
	// FindByID finds a customer by its ID, returns shared.ErrNotFound if absent
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindPage returns a page of customers ordered by creation time
	FindPage(ctx context.Context, page shared.PageRequest) (shared.Page[Customer], error)

	// Save creates or updates a customer (products are not written)
	Save(ctx context.Context, customer *Customer) error

	// Delete removes the customer and every product it owns in one transaction.
	// Deleting a missing customer is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
