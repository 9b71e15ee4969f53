package api

import "time"

// swagger:model api.ProjectResponse
type ProjectResponse struct {
	ID             int       `json:"id" example:"1"`
	Name           string    `json:"name" example:"Data Warehouse"`
	Description    *string   `json:"description"`
	ExpirationDate string    `json:"expiration_date" example:"2026-10-01"`
	OwnerID        int       `json:"owner_id" example:"1"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
