package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/coverwise/risk-profile-api/internal/infrastructure/session"
)

// Auth validates the JWT and injects the owner identity into both the echo
// context and the request context, so repository calls downstream resolve
// the session at call time.
func Auth(jwtSecret string) echo.MiddlewareFunc {
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

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("owner_id", claims["owner_id"])
			c.Set("email", claims["email"])
			c.Set("role", claims["role"])

			if ownerID, ok := claims["owner_id"].(string); ok && ownerID != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(session.WithOwner(req.Context(), ownerID)))
			}

			return next(c)
		}
	}
}
