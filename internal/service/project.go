// File: internal/service/project.go
package service

import (
	"context"
	"errors"
	"time"

	"project-registry/internal/database"
	"project-registry/internal/model"
	"project-registry/internal/store"

	"github.com/jackc/pgx/v5"
)

// CreateProject 建立專案，owner 一律取自解析後的呼叫者身分，
// 不接受 payload 指定任意 owner。
func CreateProject(ctx context.Context, db database.Querier, ownerID int, name string, description *string, expirationDate time.Time) (*model.Project, error) {
	return store.CreateProject(ctx, db, &model.Project{
		Name:           name,
		Description:    description,
		ExpirationDate: expirationDate,
		OwnerID:        ownerID,
	})
}

// GetProject 讀取呼叫者擁有的專案，查詢本身以 owner_id 過濾
func GetProject(ctx context.Context, db database.Querier, projectID, ownerID int) (*model.Project, error) {
	p, err := store.GetProjectByIDAndOwner(ctx, db, projectID, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListProjects 列出呼叫者擁有的專案
func ListProjects(ctx context.Context, db database.Querier, ownerID int) ([]model.Project, error) {
	return store.ListProjectsByOwner(ctx, db, ownerID)
}

// UpdateProject 部分更新：nil 欄位不覆寫既存值
func UpdateProject(ctx context.Context, db database.Querier, projectID, ownerID int, name, description *string, expirationDate *time.Time) (*model.Project, error) {
	p, err := store.UpdateProject(ctx, db, projectID, ownerID, name, description, expirationDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// DeleteProject 刪除呼叫者擁有的專案
func DeleteProject(ctx context.Context, db database.Querier, projectID, ownerID int) error {
	n, err := store.DeleteProjectByIDAndOwner(ctx, db, projectID, ownerID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeExpiredProjects 清除逾期專案，由背景 worker 定期呼叫
func PurgeExpiredProjects(ctx context.Context, db database.Querier) (int64, error) {
	return store.DeleteExpiredProjects(ctx, db)
}
