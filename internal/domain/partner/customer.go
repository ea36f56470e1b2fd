package partner

import (
	"strings"

	"github.com/appsmart/backend/internal/domain/catalog"
	"github.com/appsmart/backend/internal/domain/shared"
)

// Customer is the top-level owner of products
type Customer struct {
	shared.BaseEntity
	Title     string
	IsDeleted bool
	// Products are loaded eagerly and ordered by creation time
	Products []catalog.Product
}

// NewCustomer creates an unsaved customer
func NewCustomer(title string, isDeleted bool) (*Customer, error) {
	c := &Customer{
		IsDeleted: isDeleted,
		Products:  make([]catalog.Product, 0),
	}
	if err := c.SetTitle(title); err != nil {
		return nil, err
	}
	return c, nil
}

// SetTitle sets the customer title
func (c *Customer) SetTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewInvalidArgumentError("Customer title cannot be empty")
	}
	c.Title = title
	return nil
}
