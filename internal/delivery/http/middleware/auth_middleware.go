package middleware

import (
	"net/http"
	"strings"

	"academy/config"
	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access
// token and reconstructs the caller's session from its claims. Downstream
// code trusts the session as-is; no claim is re-verified later.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		// Extract account id. JSON numbers decode as float64.
		sub, ok := claims["sub"].(float64)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Account ID missing from token"})
		}
		accountID := int64(sub)
		if accountID <= 0 {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid account ID in token"})
		}

		// Extract roles
		rolesClaim, _ := claims["roles"].([]any)
		roles := make([]string, 0, len(rolesClaim))
		for _, r := range rolesClaim {
			if roleStr, ok := r.(string); ok {
				roles = append(roles, roleStr)
			}
		}

		// Set the session on the context for handlers to use
		session := usecase.Session{
			AccountID: accountID,
			Roles:     entity.RolesFromStrings(roles),
		}
		c.Set(string(deliverycontext.KeySession), session)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := SessionFromContext(c)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: session information missing"})
			}

			if !session.Roles.Contains(requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole.String() + "' role"})
			}

			return next(c)
		}
	}
}

// SessionFromContext retrieves the authenticated session placed on the echo
// context by Authenticate.
func SessionFromContext(c echo.Context) (usecase.Session, bool) {
	session, ok := c.Get(string(deliverycontext.KeySession)).(usecase.Session)

	return session, ok
}
