package catalog

import (
	"encoding/json"
	"time"

	"github.com/appsmart/backend/internal/domain/catalog"
	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TimestampLayout renders timestamps as dd-MM-yyyy HH:mm:ss in local time
const TimestampLayout = "02-01-2006 15:04:05"

// FormatTimestamp renders t with TimestampLayout in local time
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// FormatOptionalTimestamp renders t, or nil when t is unset
func FormatOptionalTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimestamp(*t)
	return &s
}

// CreateProductRequest represents a request to create a new product.
// The owning customer comes from the path, never from the body.
type CreateProductRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description *string          `json:"description" binding:"omitempty,max=1024"`
	Price       *decimal.Decimal `json:"price" binding:"required" swaggertype:"number"`
	IsDeleted   bool             `json:"isDeleted"`
}

// ToDomain builds an unsaved product from the request
func (r CreateProductRequest) ToDomain() (*catalog.Product, error) {
	if r.Price == nil {
		return nil, shared.NewInvalidArgumentError("Product price is required")
	}
	return catalog.NewProduct(r.Title, r.Description, *r.Price, r.IsDeleted)
}

// UpdateProductRequest is a partial update; nil fields are left unchanged
type UpdateProductRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description" binding:"omitempty,max=1024"`
	Price       *decimal.Decimal `json:"price" swaggertype:"number"`
	IsDeleted   bool             `json:"isDeleted"`
}

// MergeProduct copies the present fields of req onto p and stamps the
// modification time. ID, CreatedAt and the owner are never changed.
func MergeProduct(p *catalog.Product, req UpdateProductRequest, now time.Time) error {
	if req.Title != nil {
		if err := p.SetTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Description != nil {
		if err := p.SetDescription(req.Description); err != nil {
			return err
		}
	}
	if req.Price != nil {
		p.SetPrice(*req.Price)
	}
	p.IsDeleted = req.IsDeleted
	p.Touch(now)
	return nil
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	Price       json.Number `json:"price" swaggertype:"number" example:"19.99"`
	IsDeleted   bool        `json:"isDeleted"`
	CreatedAt   string      `json:"createdAt" example:"31-12-2026 23:59:59"`
	ModifiedAt  *string     `json:"modifiedAt"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Price:       json.Number(p.Price.StringFixed(catalog.PriceScale)),
		IsDeleted:   p.IsDeleted,
		CreatedAt:   FormatTimestamp(p.CreatedAt),
		ModifiedAt:  FormatOptionalTimestamp(p.ModifiedAt),
	}
}

// ToProductResponses converts a slice of domain Products, never returning nil
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
