package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/appsmart/backend/internal/domain/catalog"
	"github.com/appsmart/backend/internal/domain/partner"
	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCustomerRepository_FindByID(t *testing.T) {
	t.Run("finds customer with products", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(gormDB)

		customerID := uuid.New()
		productID := uuid.New()
		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "modified_at", "title", "is_deleted"}).
				AddRow(customerID, created, nil, "Acme", false))
		mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"."customer_id" = \$1 ORDER BY created_at ASC`).
			WithArgs(customerID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "modified_at", "customer_id", "title", "description", "price", "is_deleted"}).
				AddRow(productID, created, nil, customerID, "Widget", nil, "9.99", false))

		customer, err := repo.FindByID(context.Background(), customerID)

		require.NoError(t, err)
		assert.Equal(t, customerID, customer.ID)
		assert.Equal(t, "Acme", customer.Title)
		assert.Nil(t, customer.ModifiedAt)
		require.Len(t, customer.Products, 1)
		assert.Equal(t, productID, customer.Products[0].ID)
		assert.True(t, decimal.RequireFromString("9.99").Equal(customer.Products[0].Price))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing customer", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(gormDB)

		customerID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		customer, err := repo.FindByID(context.Background(), customerID)

		assert.Nil(t, customer)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps driver errors", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(gormDB)

		customerID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "customers"`).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.FindByID(context.Background(), customerID)

		require.Error(t, err)
		assert.NotErrorIs(t, err, shared.ErrNotFound)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestGormCustomerRepository_Delete(t *testing.T) {
	t.Run("deletes products then customer in one transaction", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(gormDB)

		customerID := uuid.New()
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "products" WHERE customer_id = \$1`).
			WithArgs(customerID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM "customers" WHERE id = \$1`).
			WithArgs(customerID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), customerID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when customer delete fails", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(gormDB)

		customerID := uuid.New()
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "products" WHERE customer_id = \$1`).
			WithArgs(customerID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM "customers" WHERE id = \$1`).
			WithArgs(customerID).
			WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), customerID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lock timeout")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDatabase(t)
	customers := NewGormCustomerRepository(db.DB)
	products := NewGormProductRepository(db.DB)

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	newCustomer := func(title string, offset time.Duration) *partner.Customer {
		c, err := partner.NewCustomer(title, false)
		require.NoError(t, err)
		c.Stamp(base.Add(offset))
		require.NoError(t, customers.Save(ctx, c))
		return c
	}
	newProduct := func(owner *partner.Customer, title string, offset time.Duration) *catalog.Product {
		p, err := catalog.NewProduct(title, nil, decimal.RequireFromString("10.50"), false)
		require.NoError(t, err)
		require.NoError(t, p.AssignOwner(owner.ID))
		p.Stamp(base.Add(offset))
		require.NoError(t, products.Save(ctx, p))
		return p
	}

	acme := newCustomer("Acme", 0)
	globex := newCustomer("Globex", time.Minute)
	second := newProduct(acme, "Second", 2*time.Minute)
	first := newProduct(acme, "First", time.Minute)
	other := newProduct(globex, "Other", time.Minute)

	t.Run("loads products oldest first", func(t *testing.T) {
		found, err := customers.FindByID(ctx, acme.ID)
		require.NoError(t, err)
		require.Len(t, found.Products, 2)
		assert.Equal(t, first.ID, found.Products[0].ID)
		assert.Equal(t, second.ID, found.Products[1].ID)
		assert.True(t, found.CreatedAt.Equal(acme.CreatedAt))
	})

	t.Run("customer without products has empty slice", func(t *testing.T) {
		lonely := newCustomer("Lonely", 3*time.Minute)
		found, err := customers.FindByID(ctx, lonely.ID)
		require.NoError(t, err)
		assert.NotNil(t, found.Products)
		assert.Empty(t, found.Products)
		require.NoError(t, customers.Delete(ctx, lonely.ID))
	})

	t.Run("pages customers", func(t *testing.T) {
		req, err := shared.NewPageRequest(0, 1)
		require.NoError(t, err)

		page, err := customers.FindPage(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Content, 1)
		assert.Equal(t, acme.ID, page.Content[0].ID)

		req, _ = shared.NewPageRequest(5, 1)
		page, err = customers.FindPage(ctx, req)
		require.NoError(t, err)
		assert.True(t, page.IsEmpty())
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("save updates existing row without touching products", func(t *testing.T) {
		found, err := customers.FindByID(ctx, acme.ID)
		require.NoError(t, err)
		require.NoError(t, found.SetTitle("Acme Corp"))
		found.Touch(base.Add(time.Hour))
		require.NoError(t, customers.Save(ctx, found))

		reloaded, err := customers.FindByID(ctx, acme.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", reloaded.Title)
		require.NotNil(t, reloaded.ModifiedAt)
		assert.True(t, reloaded.ModifiedAt.Equal(base.Add(time.Hour)))
		assert.True(t, reloaded.CreatedAt.Equal(acme.CreatedAt))
		assert.Len(t, reloaded.Products, 2)
	})

	t.Run("delete cascades to owned products only", func(t *testing.T) {
		require.NoError(t, customers.Delete(ctx, acme.ID))

		_, err := customers.FindByID(ctx, acme.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = products.FindByID(ctx, first.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = products.FindByID(ctx, second.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		kept, err := products.FindByID(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, globex.ID, kept.CustomerID)
	})

	t.Run("deleting a missing customer is a no-op", func(t *testing.T) {
		assert.NoError(t, customers.Delete(ctx, uuid.New()))
	})
}
