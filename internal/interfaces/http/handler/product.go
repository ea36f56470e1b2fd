package handler

import (
	"context"

	catalogapp "github.com/appsmart/backend/internal/application/catalog"
	"github.com/appsmart/backend/internal/domain/catalog"
	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/appsmart/backend/internal/infrastructure/logger"
	"github.com/appsmart/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductManager is the product use-case surface the handler depends on
type ProductManager interface {
	FindProduct(ctx context.Context, id string) (*catalog.Product, error)
	CreateProductForCustomer(ctx context.Context, customerID string, product *catalog.Product) (*catalog.Product, error)
	UpdateProduct(ctx context.Context, id string, req catalogapp.UpdateProductRequest) (*catalog.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	FindAllCustomerProducts(ctx context.Context, customerID string, page, size int) (shared.Page[catalog.Product], error)
}

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	products ProductManager
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products ProductManager) *ProductHandler {
	return &ProductHandler{products: products}
}

// Routes returns the product route group. Products are created and listed
// under their owning customer and addressed directly afterwards.
func (h *ProductHandler) Routes() *router.DomainGroup {
	group := router.NewDomainGroup("products", "")
	group.Group("customer-products", "/customers/:customerId/products").
		POST("", h.Create).
		GET("", h.ListByCustomer)
	group.Group("products", "/products").
		GET("/:productId", h.GetByID).
		PUT("/:productId", h.Update).
		DELETE("/:productId", h.Delete)
	return group
}

// GetByID godoc
// @ID           getProductById
// @Summary      Get product by ID
// @Tags         products
// @Produce      json
// @Param        productId path string true "Product ID" format(uuid)
// @Success      200 {object} catalogapp.ProductResponse
// @Failure      400 {string} string "Invalid UUID string"
// @Failure      404 "Product not found"
// @Router       /products/{productId} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id := c.Param("productId")
	log := logger.L(c.Request.Context())
	log.Debug("getProduct <<<", zap.String("productId", id))

	product, err := h.products.FindProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	log.Debug("getProduct >>>", principalField(c.Request.Context()), zap.String("productId", id))
	h.OK(c, catalogapp.ToProductResponse(product))
}

// Create godoc
// @ID           createProduct
// @Summary      Create a product for a customer
// @Description  The owner is taken from the path; id and timestamps are assigned by the server
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        request body catalogapp.CreateProductRequest true "Product creation request"
// @Success      200 {object} catalogapp.ProductResponse
// @Failure      400 {string} string "Validation error or unknown customer"
// @Router       /customers/{customerId}/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	customerID := c.Param("customerId")
	log := logger.L(c.Request.Context())
	log.Debug("createProduct <<<", zap.String("customerId", customerID))

	var req catalogapp.CreateProductRequest
	if !h.BindBody(c, &req) {
		return
	}

	product, err := req.ToDomain()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	created, err := h.products.CreateProductForCustomer(c.Request.Context(), customerID, product)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	log.Info("createProduct >>>",
		principalField(c.Request.Context()),
		zap.String("customerId", customerID),
		zap.String("productId", created.ID.String()),
	)
	h.OK(c, catalogapp.ToProductResponse(created))
}

// ListByCustomer godoc
// @ID           listCustomerProducts
// @Summary      List the products of a customer
// @Description  Page through a customer's products ordered by creation time; page is zero-based
// @Tags         products
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        page query int true "Page index" minimum(0)
// @Param        size query int true "Page size" minimum(1)
// @Success      200 {array} catalogapp.ProductResponse
// @Failure      400 {string} string "Invalid paging parameters"
// @Failure      404 "Page out of range"
// @Router       /customers/{customerId}/products [get]
func (h *ProductHandler) ListByCustomer(c *gin.Context) {
	customerID := c.Param("customerId")
	log := logger.L(c.Request.Context())

	page, size, ok := h.BindList(c)
	if !ok {
		return
	}
	log.Debug("getAllCustomerProducts <<<",
		zap.String("customerId", customerID),
		zap.Int("page", page),
		zap.Int("size", size),
	)

	result, err := h.products.FindAllCustomerProducts(c.Request.Context(), customerID, page, size)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if pageOutOfRange(result) {
		h.NotFound(c)
		return
	}

	log.Debug("getAllCustomerProducts >>>", principalField(c.Request.Context()), zap.Int("count", len(result.Content)))
	h.OK(c, catalogapp.ToProductResponses(result.Content))
}

// Update godoc
// @ID           updateProduct
// @Summary      Update a product
// @Description  Merge the present fields into the stored product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        productId path string true "Product ID" format(uuid)
// @Param        request body catalogapp.UpdateProductRequest true "Product update request"
// @Success      200 {object} catalogapp.ProductResponse
// @Failure      400 {string} string "Invalid argument"
// @Failure      401 {string} string "Authentication required"
// @Security     BearerAuth
// @Router       /products/{productId} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("productId")
	log := logger.L(c.Request.Context())
	log.Debug("updateProduct <<<", zap.String("productId", id))

	var req catalogapp.UpdateProductRequest
	if !h.BindBody(c, &req) {
		return
	}

	updated, err := h.products.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	log.Info("updateProduct >>>", principalField(c.Request.Context()), zap.String("productId", id))
	h.OK(c, catalogapp.ToProductResponse(updated))
}

// Delete godoc
// @ID           deleteProduct
// @Summary      Delete a product
// @Tags         products
// @Param        productId path string true "Product ID" format(uuid)
// @Success      200 "Deleted"
// @Failure      400 {string} string "Invalid UUID string"
// @Failure      401 {string} string "Authentication required"
// @Security     BearerAuth
// @Router       /products/{productId} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("productId")
	log := logger.L(c.Request.Context())
	log.Debug("deleteProduct <<<", zap.String("productId", id))

	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	log.Info("deleteProduct >>>", principalField(c.Request.Context()), zap.String("productId", id))
	h.OKEmpty(c)
}
