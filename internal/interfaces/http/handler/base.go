package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/appsmart/backend/internal/infrastructure/auth"
	"github.com/appsmart/backend/internal/infrastructure/logger"
	"github.com/appsmart/backend/internal/interfaces/http/dto"
	"github.com/appsmart/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const (
	// UnexpectedErrorMessage is the body of every 500 response
	UnexpectedErrorMessage = "An unexpected error occurred"
	// MissingBodyMessage is returned when a create or update call has no body
	MissingBodyMessage = "Required request body is missing"
)

// BaseHandler provides common handler utilities.
// Error bodies are plain text; successful reads return the bare JSON object.
type BaseHandler struct{}

// OK sends a 200 response with data as the JSON body
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// OKEmpty sends a 200 response without a body
func (h *BaseHandler) OKEmpty(c *gin.Context) {
	c.Status(http.StatusOK)
}

// BadRequest sends a 400 response with a plain-text message
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.String(http.StatusBadRequest, message)
}

// NotFound sends a 404 response with an empty body
func (h *BaseHandler) NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

// HandleError converts an error to a plain-text response.
// Domain errors map to their status; anything else is logged and becomes a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(dto.NormalizeErrorCode(domainErr.Code))
		if status == http.StatusNotFound {
			h.NotFound(c)
			return
		}
		c.String(status, domainErr.Message)
		return
	}

	logger.L(c.Request.Context()).Error("Request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.String(http.StatusInternalServerError, UnexpectedErrorMessage)
}

// BindBody decodes the JSON body into obj and validates it.
// An empty body and a literal null both count as absent. It writes the
// error response itself and reports whether the handler may continue.
func (h *BaseHandler) BindBody(c *gin.Context, obj any) bool {
	raw, err := c.GetRawData()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.String(http.StatusRequestEntityTooLarge, middleware.BodyTooLargeMessage)
			return false
		}
		h.BadRequest(c, err.Error())
		return false
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		h.BadRequest(c, MissingBodyMessage)
		return false
	}

	if err := binding.JSON.BindBody(trimmed, obj); err != nil {
		h.BadRequest(c, middleware.FormatValidationError(err))
		return false
	}
	return true
}

// BindList reads the mandatory page and size query parameters
func (h *BaseHandler) BindList(c *gin.Context) (page, size int, ok bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, middleware.FormatValidationError(err))
		return 0, 0, false
	}
	return *q.Page, *q.Size, true
}

// pageOutOfRange reports whether a page must be answered with 404
func pageOutOfRange[T any](page shared.Page[T]) bool {
	return page.IsEmpty() || page.Number > page.TotalPages
}

// principalField names the authenticated caller on exit logs
func principalField(ctx context.Context) zap.Field {
	if p, ok := auth.PrincipalFromContext(ctx); ok {
		return zap.String("principal", p.Username)
	}
	return zap.Skip()
}
