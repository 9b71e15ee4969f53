// File: internal/service/user.go
package service

import (
	"context"
	"errors"

	"project-registry/internal/database"
	"project-registry/internal/model"
	"project-registry/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation
const pgUniqueViolation = "23505"

// isUniqueViolation 判斷是否為唯一索引衝突 (duplicate email race 也會走到這裡)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// RegisterUser 建立新帳號。email 重複時回傳 ErrDuplicateEmail，
// 含寫入當下才發現的唯一索引衝突，不依賴事前檢查。
func RegisterUser(ctx context.Context, db database.Querier, email, fullName, password string) (*model.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := store.CreateUser(ctx, db, &model.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		IsActive:     true,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

// AuthenticateUser 驗證帳密。帳號不存在與密碼錯誤一律回傳
// ErrInvalidCredentials，不透露 email 是否已註冊；
// 密碼正確但帳號停用回傳 ErrForbidden。
func AuthenticateUser(ctx context.Context, db database.Querier, email, password string) (*model.User, error) {
	user, err := store.GetUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrForbidden
	}
	return user, nil
}

// DeleteUserAccount 在同一交易內先刪除使用者的專案再刪除帳號。
// cascade 在 domain 層明確執行，不依賴 ORM 隱含行為。
func DeleteUserAccount(ctx context.Context, db database.DB, userID int) error {
	return database.WithTx(ctx, db, func(q database.Querier) error {
		if err := store.DeleteProjectsByOwner(ctx, q, userID); err != nil {
			return err
		}
		return store.DeleteUser(ctx, q, userID)
	})
}
