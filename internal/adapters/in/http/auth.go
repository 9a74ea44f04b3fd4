package http

import (
	"net/http"
	"strings"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyActorID   = "actorId"
	contextKeyActorRole = "actorRole"
	contextKeyActorName = "actorName"
)

// Claims is the identity token payload. The subject claim carries the
// profile identifier; the role claim names one of the three roles.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token and resolves the actor's
// identity into the request context. The token is read from the
// Authorization header, or from the "token" query parameter to support
// WebSocket clients that cannot set headers.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr := bearerToken(c)
			if tokenStr == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			actorID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid subject claim")
			}

			role, err := profile.RoleFromString(claims.Role)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid role claim")
			}

			c.Set(contextKeyActorID, actorID)
			c.Set(contextKeyActorRole, role)
			c.Set(contextKeyActorName, claims.Name)

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	if t := c.QueryParam("token"); t != "" {
		return t
	}

	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func actorID(c echo.Context) kernel.UUID {
	id, _ := c.Get(contextKeyActorID).(kernel.UUID)
	return id
}

func actorRole(c echo.Context) profile.Role {
	role, _ := c.Get(contextKeyActorRole).(profile.Role)
	return role
}

func actorName(c echo.Context) string {
	name, _ := c.Get(contextKeyActorName).(string)
	return name
}
