package middleware

import (
	"net/http"
	"strings"

	"github.com/appsmart/backend/internal/infrastructure/auth"
	"github.com/appsmart/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys and header names used by the bearer policy
const (
	PrincipalKey  = "principal"
	AuthHeaderKey = "Authorization"
)

// UnauthorizedMessage is the plain-text body of a rejected request
const UnauthorizedMessage = "Full authentication is required to access this resource"

// TokenAuthenticator resolves a bearer token to the username it was issued for
type TokenAuthenticator interface {
	ExtractUsername(token string) (string, error)
}

// BearerAuthConfig holds configuration for the bearer policy
type BearerAuthConfig struct {
	Authenticator TokenAuthenticator
	// ProtectedPrefix is the path prefix under which ProtectedMethods need a token
	ProtectedPrefix  string
	ProtectedMethods []string
	Logger           *zap.Logger
}

// DefaultBearerAuthConfig protects PUT and DELETE under /api/v1/
func DefaultBearerAuthConfig(authenticator TokenAuthenticator) BearerAuthConfig {
	return BearerAuthConfig{
		Authenticator:    authenticator,
		ProtectedPrefix:  "/api/v1/",
		ProtectedMethods: []string{http.MethodPut, http.MethodDelete},
	}
}

// BearerAuthPolicy creates the authorization middleware with default rules
func BearerAuthPolicy(authenticator TokenAuthenticator, log *zap.Logger) gin.HandlerFunc {
	cfg := DefaultBearerAuthConfig(authenticator)
	cfg.Logger = log
	return BearerAuthPolicyWithConfig(cfg)
}

// BearerAuthPolicyWithConfig resolves the bearer token of every request.
// A valid token attaches an auth.Principal to the request context. Protected
// requests without a valid token are aborted with 401; elsewhere an invalid
// token is ignored.
func BearerAuthPolicyWithConfig(cfg BearerAuthConfig) gin.HandlerFunc {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		protected := cfg.requiresToken(c.Request.Method, c.Request.URL.Path)

		token := auth.ShrinkToken(c.GetHeader(AuthHeaderKey))
		if token == "" {
			if protected {
				rejectUnauthorized(c, cfg.Logger, auth.ErrInvalidToken)
				return
			}
			c.Next()
			return
		}

		username, err := cfg.Authenticator.ExtractUsername(token)
		if err != nil {
			if protected {
				rejectUnauthorized(c, cfg.Logger, err)
				return
			}
			c.Next()
			return
		}

		principal := auth.Principal{Username: username}
		ctx := auth.WithPrincipal(c.Request.Context(), principal)
		ctx, reqLogger := logger.WithUsername(ctx, logger.GetGinLogger(c), username)
		c.Request = c.Request.WithContext(ctx)
		c.Set(PrincipalKey, principal)
		c.Set(logger.GinLoggerKey, reqLogger)

		c.Next()
	}
}

func (cfg BearerAuthConfig) requiresToken(method, path string) bool {
	if !strings.HasPrefix(path, cfg.ProtectedPrefix) {
		return false
	}
	for _, m := range cfg.ProtectedMethods {
		if m == method {
			return true
		}
	}
	return false
}

func rejectUnauthorized(c *gin.Context, log *zap.Logger, err error) {
	log.Warn("Bearer authentication failed",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)
	c.String(http.StatusUnauthorized, UnauthorizedMessage)
	c.Abort()
}

// GetPrincipal retrieves the principal set by the bearer policy
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	if p, exists := c.Get(PrincipalKey); exists {
		if principal, ok := p.(auth.Principal); ok {
			return principal, true
		}
	}
	return auth.Principal{}, false
}
