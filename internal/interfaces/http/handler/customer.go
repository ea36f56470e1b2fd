package handler

import (
	"context"

	partnerapp "github.com/appsmart/backend/internal/application/partner"
	"github.com/appsmart/backend/internal/domain/partner"
	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/appsmart/backend/internal/infrastructure/logger"
	"github.com/appsmart/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerManager is the customer use-case surface the handler depends on
type CustomerManager interface {
	FindCustomer(ctx context.Context, id string) (*partner.Customer, error)
	CreateCustomer(ctx context.Context, customer *partner.Customer) (*partner.Customer, error)
	GetAllCustomers(ctx context.Context, page, size int) (shared.Page[partner.Customer], error)
	RemoveCustomer(ctx context.Context, id string) error
	UpdateCustomer(ctx context.Context, id string, req partnerapp.UpdateCustomerRequest) (*partner.Customer, error)
}

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customers CustomerManager
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customers CustomerManager) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// Routes returns the customer route group
func (h *CustomerHandler) Routes() *router.DomainGroup {
	return router.NewDomainGroup("customers", "/customers").
		POST("", h.Create).
		GET("", h.List).
		GET("/:customerId", h.GetByID).
		PUT("/:customerId", h.Update).
		DELETE("/:customerId", h.Delete)
}

// GetByID godoc
// @ID           getCustomerById
// @Summary      Get customer by ID
// @Description  Retrieve a customer with its products
// @Tags         customers
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Success      200 {object} partnerapp.CustomerResponse
// @Failure      400 {string} string "Invalid UUID string"
// @Failure      404 "Customer not found"
// @Router       /customers/{customerId} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id := c.Param("customerId")
	log := logger.L(c.Request.Context())
	log.Debug("getCustomer <<<", zap.String("customerId", id))

	customer, err := h.customers.FindCustomer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	log.Debug("getCustomer >>>", principalField(c.Request.Context()), zap.String("customerId", id))
	h.OK(c, partnerapp.ToCustomerResponse(customer))
}

// Create godoc
// @ID           createCustomer
// @Summary      Create a new customer
// @Description  Create a customer; id and timestamps are assigned by the server
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CreateCustomerRequest true "Customer creation request"
// @Success      200 {object} partnerapp.CustomerResponse
// @Failure      400 {string} string "Validation error"
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	log := logger.L(c.Request.Context())
	log.Debug("createCustomer <<<")

	var req partnerapp.CreateCustomerRequest
	if !h.BindBody(c, &req) {
		return
	}

	customer, err := req.ToDomain()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	created, err := h.customers.CreateCustomer(c.Request.Context(), customer)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	log.Info("createCustomer >>>", principalField(c.Request.Context()), zap.String("customerId", created.ID.String()))
	h.OK(c, partnerapp.ToCustomerResponse(created))
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  Page through customers; page is zero-based
// @Tags         customers
// @Produce      json
// @Param        page query int true "Page index" minimum(0)
// @Param        size query int true "Page size" minimum(1)
// @Success      200 {array} partnerapp.CustomerResponse
// @Failure      400 {string} string "Invalid paging parameters"
// @Failure      404 "Page out of range"
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	log := logger.L(c.Request.Context())

	page, size, ok := h.BindList(c)
	if !ok {
		return
	}
	log.Debug("getAllCustomers <<<", zap.Int("page", page), zap.Int("size", size))

	result, err := h.customers.GetAllCustomers(c.Request.Context(), page, size)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if pageOutOfRange(result) {
		h.NotFound(c)
		return
	}

	log.Debug("getAllCustomers >>>", principalField(c.Request.Context()), zap.Int("count", len(result.Content)))
	h.OK(c, partnerapp.ToCustomerResponses(result.Content))
}

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Description  Merge the present fields into the stored customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        request body partnerapp.UpdateCustomerRequest true "Customer update request"
// @Success      200 {object} partnerapp.CustomerResponse
// @Failure      400 {string} string "Invalid argument"
// @Failure      401 {string} string "Authentication required"
// @Security     BearerAuth
// @Router       /customers/{customerId} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("customerId")
	log := logger.L(c.Request.Context())
	log.Debug("updateCustomer <<<", zap.String("customerId", id))

	var req partnerapp.UpdateCustomerRequest
	if !h.BindBody(c, &req) {
		return
	}

	updated, err := h.customers.UpdateCustomer(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	log.Info("updateCustomer >>>", principalField(c.Request.Context()), zap.String("customerId", id))
	h.OK(c, partnerapp.ToCustomerResponse(updated))
}

// Delete godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Description  Delete a customer together with all of its products
// @Tags         customers
// @Param        customerId path string true "Customer ID" format(uuid)
// @Success      200 "Deleted"
// @Failure      400 {string} string "Invalid UUID string"
// @Failure      401 {string} string "Authentication required"
// @Security     BearerAuth
// @Router       /customers/{customerId} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("customerId")
	log := logger.L(c.Request.Context())
	log.Debug("deleteCustomer <<<", zap.String("customerId", id))

	if err := h.customers.RemoveCustomer(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	log.Info("deleteCustomer >>>", principalField(c.Request.Context()), zap.String("customerId", id))
	h.OKEmpty(c)
}
