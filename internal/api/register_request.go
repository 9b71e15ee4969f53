package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	FullName string `json:"full_name" validate:"required" example:"Alice Liddell"`
	Password string `json:"password" validate:"required,min=8" example:"S3curePass!"`
}
