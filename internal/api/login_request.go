package api

// LoginRequest OAuth2 password form：username 欄位承載 email
// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `form:"username" validate:"required" example:"alice@example.com"`
	Password string `form:"password" validate:"required" example:"S3curePass!"`
}
