package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	partnerapp "github.com/appsmart/backend/internal/application/partner"
	"github.com/appsmart/backend/internal/domain/partner"
	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/appsmart/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomerRouter(m *MockCustomerManager) *gin.Engine {
	engine := gin.New()
	router.NewRouter(engine).Register(NewCustomerHandler(m).Routes()).Setup()
	return engine
}

func doRequest(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func storedCustomer(t *testing.T, title string) *partner.Customer {
	t.Helper()
	c, err := partner.NewCustomer(title, false)
	require.NoError(t, err)
	c.Stamp(fixedNow)
	return c
}

func customerPage(t *testing.T, page, size int, total int64, content ...partner.Customer) shared.Page[partner.Customer] {
	t.Helper()
	req, err := shared.NewPageRequest(page, size)
	require.NoError(t, err)
	return shared.NewPage(content, req, total)
}

func TestCustomerHandler_GetByID(t *testing.T) {
	t.Run("returns customer", func(t *testing.T) {
		m := new(MockCustomerManager)
		customer := storedCustomer(t, "Acme")
		m.On("FindCustomer", mock.Anything, customer.ID.String()).Return(customer, nil)

		w := doRequest(newCustomerRouter(m), http.MethodGet, "/api/v1/customers/"+customer.ID.String(), "")

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, customer.ID.String(), body["id"])
		assert.Equal(t, "Acme", body["title"])
		assert.Equal(t, false, body["isDeleted"])
		assert.Nil(t, body["modifiedAt"])
		assert.Equal(t, []any{}, body["products"])
	})

	t.Run("not found returns 404 with empty body", func(t *testing.T) {
		m := new(MockCustomerManager)
		id := "6f1d0c4e-7b0a-4d59-9a55-2f1f7c3e8b21"
		m.On("FindCustomer", mock.Anything, id).Return(nil, shared.ErrNotFound)

		w := doRequest(newCustomerRouter(m), http.MethodGet, "/api/v1/customers/"+id, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		m := new(MockCustomerManager)
		m.On("FindCustomer", mock.Anything, "X").Return(nil, shared.NewInvalidArgumentError("Invalid UUID string: X"))

		w := doRequest(newCustomerRouter(m), http.MethodGet, "/api/v1/customers/X", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid UUID string: X", w.Body.String())
	})
}

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("creates customer", func(t *testing.T) {
		m := new(MockCustomerManager)
		created := storedCustomer(t, "T")
		m.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(c *partner.Customer) bool {
			return c.Title == "T" && c.IsNew()
		})).Return(created, nil)

		for _, path := range []string{"/api/v1/customers", "/api/v1/customers/"} {
			w := doRequest(newCustomerRouter(m), http.MethodPost, path, `{"title":"T","id":"ignored","createdAt":"01-01-2000 00:00:00"}`)

			require.Equal(t, http.StatusOK, w.Code, path)
			assert.Contains(t, w.Body.String(), `"products":[]`)
			assert.Contains(t, w.Body.String(), `"modifiedAt":null`)
			assert.Contains(t, w.Body.String(), created.ID.String())
		}
		m.AssertNumberOfCalls(t, "CreateCustomer", 2)
	})

	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{"absent body", "", MissingBodyMessage},
		{"null body", "null", MissingBodyMessage},
		{"missing title", `{"isDeleted":true}`, "title: This field is required"},
		{"blank title", `{"title":"   "}`, "Customer title cannot be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockCustomerManager)

			w := doRequest(newCustomerRouter(m), http.MethodPost, "/api/v1/customers", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
			m.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
		})
	}
}

func TestCustomerHandler_List(t *testing.T) {
	t.Run("returns page content as array", func(t *testing.T) {
		m := new(MockCustomerManager)
		a, b := storedCustomer(t, "A"), storedCustomer(t, "B")
		m.On("GetAllCustomers", mock.Anything, 0, 2).Return(customerPage(t, 0, 2, 3, *a, *b), nil)

		w := doRequest(newCustomerRouter(m), http.MethodGet, "/api/v1/customers?page=0&size=2", "")

		require.Equal(t, http.StatusOK, w.Code)
		var body []partnerapp.CustomerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "A", body[0].Title)
		assert.Equal(t, "B", body[1].Title)
	})

	t.Run("page beyond total returns 404 with empty body", func(t *testing.T) {
		m := new(MockCustomerManager)
		m.On("GetAllCustomers", mock.Anything, 5, 1).Return(customerPage(t, 5, 1, 1), nil)

		w := doRequest(newCustomerRouter(m), http.MethodGet, "/api/v1/customers?page=5&size=1", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("invalid bounds return 400", func(t *testing.T) {
		m := new(MockCustomerManager)
		m.On("GetAllCustomers", mock.Anything, -1, 10).
			Return(shared.Page[partner.Customer]{}, shared.NewInvalidArgumentError("Page index must not be less than zero"))

		w := doRequest(newCustomerRouter(m), http.MethodGet, "/api/v1/customers?page=-1&size=10", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Page index must not be less than zero", w.Body.String())
	})

	for _, query := range []string{"", "?page=0", "?size=3", "?page=a&size=3"} {
		t.Run("rejects query "+query, func(t *testing.T) {
			m := new(MockCustomerManager)

			w := doRequest(newCustomerRouter(m), http.MethodGet, "/api/v1/customers"+query, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			m.AssertNotCalled(t, "GetAllCustomers", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCustomerHandler_Update(t *testing.T) {
	t.Run("merges present fields", func(t *testing.T) {
		m := new(MockCustomerManager)
		updated := storedCustomer(t, "NEW")
		updated.Touch(fixedNow.Add(1))
		title := "NEW"
		m.On("UpdateCustomer", mock.Anything, updated.ID.String(), partnerapp.UpdateCustomerRequest{Title: &title}).
			Return(updated, nil)

		w := doRequest(newCustomerRouter(m), http.MethodPut, "/api/v1/customers/"+updated.ID.String(), `{"title":"NEW"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var body partnerapp.CustomerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "NEW", body.Title)
		assert.NotNil(t, body.ModifiedAt)
		m.AssertExpectations(t)
	})

	t.Run("missing customer returns 400 with message", func(t *testing.T) {
		m := new(MockCustomerManager)
		id := "6f1d0c4e-7b0a-4d59-9a55-2f1f7c3e8b21"
		m.On("UpdateCustomer", mock.Anything, id, mock.Anything).
			Return(nil, shared.NewInvalidArgumentError("Customer with id = '%s' not found!", id))

		w := doRequest(newCustomerRouter(m), http.MethodPut, "/api/v1/customers/"+id, `{"isDeleted":true}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Customer with id = '"+id+"' not found!", w.Body.String())
	})

	t.Run("absent body is rejected before the manager", func(t *testing.T) {
		m := new(MockCustomerManager)

		w := doRequest(newCustomerRouter(m), http.MethodPut, "/api/v1/customers/6f1d0c4e-7b0a-4d59-9a55-2f1f7c3e8b21", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		m.AssertNotCalled(t, "UpdateCustomer", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCustomerHandler_Delete(t *testing.T) {
	m := new(MockCustomerManager)
	id := "6f1d0c4e-7b0a-4d59-9a55-2f1f7c3e8b21"
	m.On("RemoveCustomer", mock.Anything, id).Return(nil)

	w := doRequest(newCustomerRouter(m), http.MethodDelete, "/api/v1/customers/"+id, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	m.AssertExpectations(t)
}
