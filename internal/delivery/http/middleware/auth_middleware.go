package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"bakehouse/config"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/service"
)

// AuthMiddleware gates the mutating admin routes behind the session token.
// The storefront historically ran the admin panel on trust, so enforcement
// is opt-in via config; with admin.requireToken unset every request passes
// straight through.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	enforce  bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, enforce: cfg.Admin.RequireToken}
}

// RequireAdmin validates the Bearer token on mutating routes when
// enforcement is enabled.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enforce {
			return next(c)
		}

		authHeader := c.Request().Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			return domainerrors.ErrUnauthorized
		}

		subject, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		c.Set("admin", subject)

		return next(c)
	}
}
