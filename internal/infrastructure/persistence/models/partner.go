package models

import (
	"github.com/appsmart/backend/internal/domain/catalog"
	"github.com/appsmart/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Title     string         `gorm:"type:varchar(255);not null"`
	IsDeleted bool           `gorm:"column:is_deleted;not null"`
	Products  []ProductModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	products := make([]catalog.Product, len(m.Products))
	for i := range m.Products {
		products[i] = *m.Products[i].ToDomain()
	}
	return &partner.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		Title:      m.Title,
		IsDeleted:  m.IsDeleted,
		Products:   products,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
// Products are persisted through their own repository and are not copied.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Title = c.Title
	m.IsDeleted = c.IsDeleted
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
