package middleware

import (
	"errors"
	"net/http"
	"strings"

	"project-registry/internal/database"
	"project-registry/internal/model"
	"project-registry/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}

// RequireAuth 解析 Bearer 令牌並將有效使用者放入 context。
// 令牌無效或查無使用者回 401；使用者停用回 403。
func RequireAuth(db database.DB, resolver *service.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := extractToken(c)
			if err != nil {
				return err
			}
			user, err := resolver.Resolve(c.Request().Context(), db, tokenString)
			if err != nil {
				if errors.Is(err, service.ErrForbidden) {
					return echo.NewHTTPError(http.StatusForbidden, service.ErrForbidden.Error())
				}
				return echo.NewHTTPError(http.StatusUnauthorized, service.ErrUnauthenticated.Error())
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser 取出 RequireAuth 放入的使用者
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}
