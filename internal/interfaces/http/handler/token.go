package handler

import (
	"net/http"

	"github.com/appsmart/backend/internal/infrastructure/logger"
	"github.com/appsmart/backend/internal/interfaces/http/dto"
	"github.com/appsmart/backend/internal/interfaces/http/middleware"
	"github.com/appsmart/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenIssuer signs access tokens
type TokenIssuer interface {
	GenerateToken(username string) (string, error)
}

// TokenHandler issues bearer tokens
type TokenHandler struct {
	BaseHandler
	issuer TokenIssuer
}

// NewTokenHandler creates a new TokenHandler
func NewTokenHandler(issuer TokenIssuer) *TokenHandler {
	return &TokenHandler{issuer: issuer}
}

// Routes returns the token route group
func (h *TokenHandler) Routes() *router.DomainGroup {
	return router.NewDomainGroup("token", "/token").
		GET("", h.Issue)
}

// Issue godoc
// @ID           issueToken
// @Summary      Issue an access token
// @Description  Returns a signed bearer token for the given username as plain text
// @Tags         auth
// @Produce      plain
// @Param        username query string true "Username the token is issued for"
// @Success      200 {string} string "Signed token"
// @Failure      400 {string} string "Missing username"
// @Router       /token [get]
func (h *TokenHandler) Issue(c *gin.Context) {
	log := logger.L(c.Request.Context())

	var q dto.TokenQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, middleware.FormatValidationError(err))
		return
	}
	log.Debug("getToken <<<", zap.String("for", q.Username))

	token, err := h.issuer.GenerateToken(q.Username)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	log.Debug("getToken >>>", zap.String("for", q.Username))
	c.String(http.StatusOK, token)
}
