package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxDescriptionLength bounds the product description
const MaxDescriptionLength = 1024

// PriceScale is the number of fractional digits kept for prices
const PriceScale = 2

// Product is an item owned by exactly one customer
type Product struct {
	shared.BaseEntity
	CustomerID  uuid.UUID
	Title       string
	Description *string
	Price       decimal.Decimal
	IsDeleted   bool
}

// NewProduct creates an unsaved product. The owner is assigned on creation
// by the product service, never from client input.
func NewProduct(title string, description *string, price decimal.Decimal, isDeleted bool) (*Product, error) {
	p := &Product{IsDeleted: isDeleted}
	if err := p.SetTitle(title); err != nil {
		return nil, err
	}
	if err := p.SetDescription(description); err != nil {
		return nil, err
	}
	p.SetPrice(price)
	return p, nil
}

// SetTitle sets the product title
func (p *Product) SetTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewInvalidArgumentError("Product title cannot be empty")
	}
	p.Title = title
	return nil
}

// SetDescription sets the optional description
func (p *Product) SetDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > MaxDescriptionLength {
		return shared.NewInvalidArgumentError("Product description cannot exceed %d characters", MaxDescriptionLength)
	}
	p.Description = description
	return nil
}

// SetPrice sets the price rounded to two fractional digits
func (p *Product) SetPrice(price decimal.Decimal) {
	p.Price = price.Round(PriceScale)
}

// AssignOwner binds the product to its customer
func (p *Product) AssignOwner(customerID uuid.UUID) error {
	if customerID == uuid.Nil {
		return shared.NewInvalidArgumentError("Product owner cannot be empty")
	}
	p.CustomerID = customerID
	return nil
}
