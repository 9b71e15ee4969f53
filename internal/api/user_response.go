package api

import "time"

// swagger:model api.UserResponse
type UserResponse struct {
	ID          int        `json:"id" example:"1"`
	Email       string     `json:"email" example:"alice@example.com"`
	FullName    string     `json:"full_name" example:"Alice Liddell"`
	IsActive    bool       `json:"is_active" example:"true"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}
