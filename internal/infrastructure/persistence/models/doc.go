// Package models contains GORM persistence models that map to database tables.
// They are kept apart from domain entities so the domain layer stays free of
// ORM tags.
//
//   - base.go: BaseModel shared by every table
//   - partner.go: customers
//   - catalog.go: products, indexed by owning customer
package models
