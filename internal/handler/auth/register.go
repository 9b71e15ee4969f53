// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"project-registry/internal/api"
	"project-registry/internal/database"
	"project-registry/internal/service"

	"github.com/labstack/echo/v4"
)

var registerUser = service.RegisterUser

// RegisterHandler 註冊新使用者
// @Summary     Register a new user
// @Description 建立新帳號並回傳建立後的個人資料 (Email 會自動轉小寫)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// Email 轉為小寫以確保一致性，僅做格式檢查不做完整 RFC 驗證
		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		user, err := registerUser(c.Request().Context(), db, req.Email, req.FullName, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrDuplicateEmail) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: service.ErrDuplicateEmail.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			IsActive:  user.IsActive,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		})
	}
}
