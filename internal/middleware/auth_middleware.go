package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"
	"urbankicks/pkg/logger"
	"urbankicks/pkg/utils"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Message string `json:"message"`
}

// TokenValidator resolves a bearer token to a user id via the session
// store.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", false
	}

	return tokenParts[1], true
}

// AuthMiddlewareWithSession validates the JWT and requires the token to
// still be live in the session store, so logouts and revocations take
// effect. The caller's identity is stashed on the request context.
func AuthMiddlewareWithSession(tokenValidator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorResponse{Message: "missing or malformed authorization header"})
			}

			claims, err := utils.ParseJWT(tokenString)
			if err != nil {
				logger.Error("Failed to parse JWT", err)
				return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid token"})
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || time.Now().After(expAt.Time) {
				return c.JSON(http.StatusForbidden, errorResponse{Message: "token expired"})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			userID, err := tokenValidator.ValidateToken(ctx, tokenString)
			if err != nil {
				logger.Error("Token not found in session store", err)
				return c.JSON(http.StatusUnauthorized, errorResponse{Message: "token expired or invalid"})
			}

			if userID != claims.UserID {
				logger.Error("User ID mismatch between JWT and session store")
				return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid token"})
			}

			userIDUint, err := strconv.ParseUint(claims.UserID, 10, 64)
			if err != nil {
				logger.Error("Invalid user ID in token", err)
				return c.JSON(http.StatusForbidden, errorResponse{Message: "invalid user ID in token"})
			}

			c.Set("user_id", uint(userIDUint))
			c.Set("role", claims.Role)
			c.Set("token", tokenString)

			return next(c)
		}
	}
}

// AdminOnly gates privileged routes on the role claim carried by the
// session token, not on any hard-coded identity.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !strings.EqualFold(role, "admin") {
				return c.JSON(http.StatusForbidden, errorResponse{Message: "admin access required"})
			}

			return next(c)
		}
	}
}
