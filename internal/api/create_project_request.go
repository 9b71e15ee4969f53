package api

// CreateProjectRequest 建立專案。owner 由伺服器端以呼叫者身分決定，
// payload 不允許攜帶 owner 欄位。
// swagger:model api.CreateProjectRequest
type CreateProjectRequest struct {
	Name           string  `json:"name" validate:"required" example:"Data Warehouse"`
	Description    *string `json:"description" example:"central analytics store"`
	ExpirationDate string  `json:"expiration_date" validate:"required,datetime=2006-01-02" example:"2026-10-01"`
}
