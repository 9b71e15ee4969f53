// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"project-registry/internal/api"
	"project-registry/internal/cache"
	"project-registry/internal/database"
	"project-registry/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	authenticateUser = service.AuthenticateUser
	timeNow          = time.Now
)

// 最近登入時間在 Redis 的保存期
const lastLoginTTL = 30 * 24 * time.Hour

// LastLoginKey 組出使用者最近登入時間的快取鍵
func LastLoginKey(email string) string {
	return "last_login:" + email
}

// LoginHandler 使用 email/密碼驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與有效秒數
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "使用者 Email"
// @Param       password formData string true "使用者密碼"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, rdb cache.Cache, codec *service.TokenCodec) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		email := strings.ToLower(req.Username)
		user, err := authenticateUser(c.Request().Context(), db, email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrForbidden) {
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: service.ErrForbidden.Error()})
			}
			// 不透露 email 是否存在
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: service.ErrInvalidCredentials.Error()})
		}

		token, err := codec.Issue(user.Email, 0)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		// 紀錄最近登入時間，僅供查詢顯示，寫入失敗不影響登入
		now := timeNow().UTC()
		if err := rdb.Set(c.Request().Context(), LastLoginKey(user.Email), now.Format(time.RFC3339), lastLoginTTL).Err(); err != nil {
			c.Logger().Warnf("failed to record last login: %v", err)
		}

		return c.JSON(http.StatusOK, api.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   int(codec.DefaultTTL().Seconds()),
		})
	}
}
