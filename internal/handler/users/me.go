// File: internal/handler/users/me.go
package users

import (
	"net/http"
	"time"

	"project-registry/internal/api"
	"project-registry/internal/cache"
	"project-registry/internal/database"
	"project-registry/internal/handler/auth"
	"project-registry/internal/middleware"
	"project-registry/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

var deleteUserAccount = service.DeleteUserAccount

// GetMyUserHandler 取得當前使用者資料
// @Summary     Get current user info
// @Description 透過 JWT Token 取得當前使用者詳細資訊，附上最近登入時間
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMyUserHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		resp := api.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			IsActive:  user.IsActive,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		}

		// 最近登入時間為輔助資訊，快取沒有就省略
		val, err := rdb.Get(c.Request().Context(), auth.LastLoginKey(user.Email)).Result()
		if err == nil {
			if t, perr := time.Parse(time.RFC3339, val); perr == nil {
				resp.LastLoginAt = &t
			}
		} else if err != redis.Nil {
			c.Logger().Warnf("failed to read last login: %v", err)
		}

		return c.JSON(http.StatusOK, resp)
	}
}

// DeleteMyUserHandler 刪除當前使用者帳號
// @Summary     Delete current user
// @Description 在同一交易內刪除使用者與其所有專案
// @Tags        users
// @Success     204
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [delete]
func DeleteMyUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		if err := deleteUserAccount(c.Request().Context(), db, user.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
