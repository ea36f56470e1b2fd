package models

import (
	"github.com/appsmart/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Description *string         `gorm:"type:varchar(1024)"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsDeleted   bool            `gorm:"column:is_deleted;not null"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		CustomerID:  m.CustomerID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price.Round(catalog.PriceScale),
		IsDeleted:   m.IsDeleted,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.CustomerID = p.CustomerID
	m.Title = p.Title
	m.Description = p.Description
	m.Price = p.Price
	m.IsDeleted = p.IsDeleted
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
