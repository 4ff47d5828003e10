package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/response"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	principalKey = "principal"

	AdminKeyHeader = "X-Admin-Key"
	AdminIDHeader  = "X-Admin-ID"

	messageInvalidToken = "Token is not valid"
)

// IsLoggedIn verifies the bearer token and leaves the parsed token under "user".
func IsLoggedIn(secret string) echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(secret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: messageInvalidToken})
		},
	})
}

// Authorize resolves the caller into a domain.Principal once per request. With
// roles given, callers holding none of them are refused.
func Authorize(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, role, err := utils.ExtractTokenUser(c)
			if err != nil {
				return response.WriteErrorResponse(c, err, nil)
			}

			id, err := primitive.ObjectIDFromHex(userID)
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			principal := domain.Principal{ID: id, Role: domain.Role(role)}
			if len(roles) > 0 && !hasRole(principal.Role, roles) {
				return response.WriteErrorResponse(c, deniedFor(roles), nil)
			}

			c.Set(principalKey, principal)

			return next(c)
		}
	}
}

func hasRole(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}

	return false
}

func deniedFor(roles []domain.Role) error {
	if len(roles) == 1 && roles[0] == domain.RoleSeller {
		return errs.ErrSellerRoleRequired
	}

	return errs.ErrForbidden
}

// PrincipalFrom returns the caller stored by Authorize.
func PrincipalFrom(c echo.Context) (domain.Principal, error) {
	principal, ok := c.Get(principalKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, errs.ErrNotLoggedIn
	}

	return principal, nil
}

// IsAdmin checks the shared key the admin collaborator sends. An empty key
// disables the admin routes entirely.
func IsAdmin(apiKey string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:" + AdminKeyHeader,
		Validator: func(key string, c echo.Context) (bool, error) {
			if apiKey == "" {
				return false, nil
			}

			return subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return response.WriteErrorResponse(c, errs.ErrForbidden, nil)
		},
	})
}
