package partner

import (
	"time"

	catalogapp "github.com/appsmart/backend/internal/application/catalog"
	"github.com/appsmart/backend/internal/domain/partner"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Title     string `json:"title" binding:"required"`
	IsDeleted bool   `json:"isDeleted"`
}

// ToDomain builds an unsaved customer; id, timestamps and products are never
// taken from client input.
func (r CreateCustomerRequest) ToDomain() (*partner.Customer, error) {
	return partner.NewCustomer(r.Title, r.IsDeleted)
}

// UpdateCustomerRequest is a partial update; a nil title is left unchanged
type UpdateCustomerRequest struct {
	Title     *string `json:"title"`
	IsDeleted bool    `json:"isDeleted"`
}

// MergeCustomer copies the present fields of req onto c and stamps the
// modification time. ID, CreatedAt and products are never changed.
func MergeCustomer(c *partner.Customer, req UpdateCustomerRequest, now time.Time) error {
	if req.Title != nil {
		if err := c.SetTitle(*req.Title); err != nil {
			return err
		}
	}
	c.IsDeleted = req.IsDeleted
	c.Touch(now)
	return nil
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID         string                       `json:"id"`
	Title      string                       `json:"title"`
	IsDeleted  bool                         `json:"isDeleted"`
	CreatedAt  string                       `json:"createdAt" example:"31-12-2026 23:59:59"`
	ModifiedAt *string                      `json:"modifiedAt"`
	Products   []catalogapp.ProductResponse `json:"products"`
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID.String(),
		Title:      c.Title,
		IsDeleted:  c.IsDeleted,
		CreatedAt:  catalogapp.FormatTimestamp(c.CreatedAt),
		ModifiedAt: catalogapp.FormatOptionalTimestamp(c.ModifiedAt),
		Products:   catalogapp.ToProductResponses(c.Products),
	}
}

// ToCustomerResponses converts a slice of domain Customers, never returning nil
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
