package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/access"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// sessionContextKey is the echo.Context key the resolved session is stored under.
const sessionContextKey = "session"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// SessionFromContext returns the session a preceding Authenticate or
// ResolveSession stored, or nil when the caller is anonymous.
func SessionFromContext(c echo.Context) *entity.Session {
	session, _ := c.Get(sessionContextKey).(*entity.Session)

	return session
}

// resolve parses and validates the bearer token, returning the embedded
// session. A missing header is not an error here; callers decide.
func (m *AuthMiddleware) resolve(c echo.Context) (*entity.Session, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format, must be Bearer token")
	}

	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil || !token.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Failed to parse token claims")
	}

	session, err := m.tokenSvc.SessionFromClaims(claims)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Malformed session claims")
	}

	return session, nil
}

// Authenticate validates the JWT access token and stores the session on the
// context. Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.resolve(c)
		if err != nil {
			return err
		}
		if session == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
		}

		c.Set(sessionContextKey, session)

		return next(c)
	}
}

// ResolveSession stores the session when a valid token is present but lets
// anonymous requests through. Guard middleware downstream decides the outcome,
// so a protected page can redirect instead of erroring.
func (m *AuthMiddleware) ResolveSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.resolve(c)
		if err == nil && session != nil {
			c.Set(sessionContextKey, session)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the session's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFromContext(c)
			if session == nil {
				return echo.NewHTTPError(http.StatusForbidden, "Permission denied: session missing")
			}
			if session.Role != requiredRole {
				return echo.NewHTTPError(http.StatusForbidden, "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// GuardOwner protects the owner surface. Denials redirect to home with
// 303 See Other instead of erroring, so protected paths are not enumerable.
func (m *AuthMiddleware) GuardOwner() echo.MiddlewareFunc {
	return m.guard(func(echo.Context) access.Target {
		return access.OwnerPages()
	})
}

// GuardSellerAdmin protects a seller's admin panel. The seller id is read
// from the named route parameter.
func (m *AuthMiddleware) GuardSellerAdmin(sellerParam string) echo.MiddlewareFunc {
	return m.guard(func(c echo.Context) access.Target {
		sellerID, _ := strconv.ParseInt(c.Param(sellerParam), 10, 64)

		return access.SellerAdminPages(sellerID)
	})
}

// GuardStorefront protects a seller's storefront surface.
func (m *AuthMiddleware) GuardStorefront(sellerParam string) echo.MiddlewareFunc {
	return m.guard(func(c echo.Context) access.Target {
		sellerID, _ := strconv.ParseInt(c.Param(sellerParam), 10, 64)

		return access.StorefrontPages(sellerID)
	})
}

// guard evaluates the access policy for the request. It must run after
// ResolveSession: by then the visitor is determined either way, so Defer
// cannot occur and the decision is Allow or Redirect.
func (m *AuthMiddleware) guard(target func(echo.Context) access.Target) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			visitor := access.AuthenticatedVisitor(SessionFromContext(c))
			if access.Decide(visitor, target(c)) != access.Allow {
				return c.Redirect(http.StatusSeeOther, "/")
			}

			return next(c)
		}
	}
}
