package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

// TokenChecker abstracts the logout denylist consulted on every request.
type TokenChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Auth validates the bearer token and injects the caller's Session into the
// request context. Tokens revoked by logout are rejected.
func Auth(jwtSecret string, denylist TokenChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			raw := parts[1]

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), raw)
				if err != nil {
					return echo.NewHTTPError(http.StatusServiceUnavailable, "session store unavailable")
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			userID, _ := claims["user_id"].(float64)
			role, _ := claims["role"].(string)

			c.Set("session", domain.Session{UserID: int(userID), Role: domain.Role(role)})
			c.Set("token", raw)

			return next(c)
		}
	}
}
