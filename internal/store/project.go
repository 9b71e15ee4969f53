package store

import (
	"context"
	"fmt"
	"time"

	"project-registry/internal/database"
	"project-registry/internal/model"
)

const projectColumns = `id, name, description, expiration_date, owner_id, created_at, updated_at`

func scanProject(row interface{ Scan(dest ...any) error }) (*model.Project, error) {
	p := &model.Project{}
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.ExpirationDate,
		&p.OwnerID,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func CreateProject(ctx context.Context, db database.Querier, p *model.Project) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO projects (name, description, expiration_date, owner_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		p.Name,
		p.Description,
		p.ExpirationDate,
		p.OwnerID,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateProject: %w", err)
	}
	return p, nil
}

// GetProjectByIDAndOwner 以 id 與 owner_id 同時過濾。
// 別人的專案與不存在的專案對呼叫者不可區分。
func GetProjectByIDAndOwner(ctx context.Context, db database.Querier, projectID, ownerID int) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`SELECT `+projectColumns+`
		 FROM projects WHERE id = $1 AND owner_id = $2`,
		projectID,
		ownerID,
	)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("GetProjectByIDAndOwner: %w", err)
	}
	return p, nil
}

// ListProjectsByOwner 只回傳呼叫者擁有的專案，依建立時間新到舊排序
func ListProjectsByOwner(ctx context.Context, db database.Querier, ownerID int) ([]model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects WHERE owner_id = $1
		 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProjectsByOwner: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("ListProjectsByOwner: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProjectsByOwner: %w", err)
	}
	return projects, nil
}

// UpdateProject 部分更新：nil 欄位保留原值 (COALESCE)，
// 同樣以 owner_id 過濾，回傳更新後整列。
func UpdateProject(ctx context.Context, db database.Querier, projectID, ownerID int, name, description *string, expirationDate *time.Time) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`UPDATE projects
		 SET name = COALESCE($3, name),
		     description = COALESCE($4, description),
		     expiration_date = COALESCE($5, expiration_date),
		     updated_at = now()
		 WHERE id = $1 AND owner_id = $2
		 RETURNING `+projectColumns,
		projectID,
		ownerID,
		name,
		description,
		expirationDate,
	)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("UpdateProject: %w", err)
	}
	return p, nil
}

// DeleteProjectByIDAndOwner 回傳實際刪除筆數，0 表示不存在或非本人擁有
func DeleteProjectByIDAndOwner(ctx context.Context, db database.Querier, projectID, ownerID int) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND owner_id = $2`,
		projectID,
		ownerID,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteProjectByIDAndOwner: %w", err)
	}
	return tag.RowsAffected(), nil
}

func DeleteProjectsByOwner(ctx context.Context, db database.Querier, ownerID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM projects WHERE owner_id = $1`,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteProjectsByOwner: %w", err)
	}
	return nil
}

// DeleteExpiredProjects 清除逾期專案，回傳刪除筆數
func DeleteExpiredProjects(ctx context.Context, db database.Querier) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM projects WHERE expiration_date < CURRENT_DATE`,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteExpiredProjects: %w", err)
	}
	return tag.RowsAffected(), nil
}
