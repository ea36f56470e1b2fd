package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/appsmart/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// BearerPrefix is stripped from Authorization header values before validation
const BearerPrefix = "Bearer "

// Token errors. All of them match ErrUnauthorized through errors.Is.
var (
	ErrUnauthorized   = shared.ErrUnauthorized
	ErrInvalidToken   = shared.NewDomainError(shared.CodeUnauthorized, "invalid token")
	ErrExpiredToken   = shared.NewDomainError(shared.CodeUnauthorized, "token has expired")
	ErrMissingSubject = shared.NewDomainError(shared.CodeUnauthorized, "missing subject in token claims")
	ErrEmptyUsername  = shared.NewInvalidArgumentError("username must not be blank")
)

// JWTService issues and validates HS256 bearer tokens bound to a username
type JWTService struct {
	secret          []byte
	expiration      time.Duration
	issuer          string
	bypassToken     string
	bypassPrincipal string
	clock           shared.Clock
}

// Option configures a JWTService
type Option func(*JWTService)

// WithClock overrides the time source used for iat/exp and expiry checks
func WithClock(clock shared.Clock) Option {
	return func(s *JWTService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.JWTConfig, opts ...Option) *JWTService {
	s := &JWTService{
		secret:          []byte(cfg.Secret),
		expiration:      cfg.Expiration,
		issuer:          cfg.Issuer,
		bypassToken:     cfg.BypassToken,
		bypassPrincipal: cfg.BypassPrincipal,
		clock:           shared.SystemClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BypassEnabled reports whether a bypass literal is configured
func (s *JWTService) BypassEnabled() bool {
	return s.bypassToken != ""
}

// GenerateToken issues a signed token whose subject is username
func (s *JWTService) GenerateToken(username string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", ErrEmptyUsername
	}

	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Issuer:    s.issuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken checks signature, expiry and subject
func (s *JWTService) ValidateToken(token string) error {
	if s.isBypass(token) {
		return nil
	}
	_, err := s.parse(token)
	return err
}

// ExtractUsername returns the subject of a token
func (s *JWTService) ExtractUsername(token string) (string, error) {
	if s.isBypass(token) {
		return s.bypassPrincipal, nil
	}
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ShrinkToken strips the "Bearer " prefix from a header value when present
func ShrinkToken(header string) string {
	if strings.HasPrefix(header, "Bearer") && len(header) >= len(BearerPrefix) {
		return header[len(BearerPrefix):]
	}
	return header
}

func (s *JWTService) isBypass(token string) bool {
	return s.bypassToken != "" && token == s.bypassToken
}

func (s *JWTService) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now), jwt.WithIssuedAt())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}
