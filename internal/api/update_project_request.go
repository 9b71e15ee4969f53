package api

// UpdateProjectRequest 部分更新：未出現的欄位保留原值
// swagger:model api.UpdateProjectRequest
type UpdateProjectRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1" example:"Data Warehouse v2"`
	Description    *string `json:"description"`
	ExpirationDate *string `json:"expiration_date" validate:"omitempty,datetime=2006-01-02" example:"2027-01-01"`
}
