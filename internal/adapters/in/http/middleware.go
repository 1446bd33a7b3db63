package http

import (
	"net/http"
	"strings"
	"time"

	"foodorder/internal/core/application/access"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const callerContextKey = "caller"

// TokenParser extracts the token identifier from a signed bearer token.
type TokenParser interface {
	Parse(tokenStr string) (uuid.UUID, error)
}

// AuthMiddleware resolves the bearer token to a caller identity. A request
// without a valid, unexpired, still-issued token proceeds as anonymous; the
// role gate decides what anonymous callers may do.
type AuthMiddleware struct {
	parser TokenParser
	tokens ports.TokenRepository
	users  ports.UserRepository
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(parser TokenParser, tokens ports.TokenRepository, users ports.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{parser: parser, tokens: tokens, users: users}
}

// Authenticate stores the resolved caller in the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(callerContextKey, m.resolve(c))
		return next(c)
	}
}

func (m *AuthMiddleware) resolve(c echo.Context) access.Caller {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenStr, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenStr == "" {
		return access.Anonymous
	}

	tokenID, err := m.parser.Parse(tokenStr)
	if err != nil {
		return access.Anonymous
	}

	ctx := c.Request().Context()

	// A missing row means the token was revoked by logout.
	issued, err := m.tokens.Get(ctx, tokenID)
	if err != nil || issued.IsExpired(time.Now()) {
		return access.Anonymous
	}

	user, err := m.users.GetByID(ctx, issued.UserID())
	if err != nil {
		return access.Anonymous
	}

	return access.Caller{ID: user.ID(), Roles: user.Roles()}
}

// RequireRoles gates a route on the caller's roles. Denied requests get the
// fixed 403 body.
func RequireRoles(roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !access.Allowed(callerFromContext(c), roles...) {
				return message(c, http.StatusForbidden, msgAccessDenied)
			}
			return next(c)
		}
	}
}

func callerFromContext(c echo.Context) access.Caller {
	if caller, ok := c.Get(callerContextKey).(access.Caller); ok {
		return caller
	}
	return access.Anonymous
}
