// File: internal/model/project.go
package model

import "time"

// Project 使用者擁有的專案資源，owner 建立後不可變更
type Project struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Description    *string   `db:"description" json:"description"`
	ExpirationDate time.Time `db:"expiration_date" json:"expiration_date"`
	OwnerID        int       `db:"owner_id" json:"owner_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
