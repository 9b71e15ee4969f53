// File: internal/service/identity.go
package service

import (
	"context"
	"errors"

	"project-registry/internal/database"
	"project-registry/internal/model"
	"project-registry/internal/store"

	"github.com/jackc/pgx/v5"
)

// Resolver 將通過驗證的令牌解析為有效使用者，純查詢、無副作用
type Resolver struct {
	codec *TokenCodec
}

func NewResolver(codec *TokenCodec) *Resolver {
	return &Resolver{codec: codec}
}

// Resolve 驗證令牌並查出對應的使用者。
// 令牌無效、subject 缺失或查無此人一律 ErrUnauthenticated；
// 使用者存在但停用回傳 ErrForbidden（已證明身分，但被拒絕）。
func (r *Resolver) Resolve(ctx context.Context, db database.Querier, tokenString string) (*model.User, error) {
	claims, err := r.codec.Verify(tokenString)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := store.GetUserByEmail(ctx, db, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrForbidden
	}
	return user, nil
}
