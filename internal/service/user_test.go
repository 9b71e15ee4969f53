package service

import (
	"context"
	"errors"
	"testing"

	"project-registry/internal/database"
	"project-registry/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := userDB(&model.User{ID: 9}, nil)
		u, err := RegisterUser(ctx, db, "alice@example.com", "Alice Liddell", "S3curePass!")
		require.NoError(t, err)
		require.Equal(t, 9, u.ID)
		require.Equal(t, "alice@example.com", u.Email)
		require.True(t, u.IsActive)
		// 密碼以哈希保存，不落明文
		require.NotEqual(t, "S3curePass!", u.PasswordHash)
		require.True(t, VerifyPassword("S3curePass!", u.PasswordHash))
	})

	t.Run("duplicate email from unique index", func(t *testing.T) {
		// 唯一索引衝突在寫入當下才發現，也必須映射為 ErrDuplicateEmail
		db := userDB(nil, &pgconn.PgError{Code: "23505", ConstraintName: "ix_users_email"})
		_, err := RegisterUser(ctx, db, "alice@example.com", "Alice", "S3curePass!")
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("other db error passes through", func(t *testing.T) {
		db := userDB(nil, errors.New("conn reset"))
		_, err := RegisterUser(ctx, db, "alice@example.com", "Alice", "S3curePass!")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestAuthenticateUser(t *testing.T) {
	ctx := context.Background()
	hash, err := HashPassword("S3curePass!")
	require.NoError(t, err)

	active := &model.User{ID: 1, Email: "alice@example.com", PasswordHash: hash, IsActive: true}

	t.Run("success", func(t *testing.T) {
		u, err := AuthenticateUser(ctx, userDB(active, nil), "alice@example.com", "S3curePass!")
		require.NoError(t, err)
		require.Equal(t, 1, u.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := AuthenticateUser(ctx, userDB(nil, pgx.ErrNoRows), "ghost@example.com", "S3curePass!")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := AuthenticateUser(ctx, userDB(active, nil), "alice@example.com", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("corrupted stored hash rejects without panic", func(t *testing.T) {
		broken := &model.User{ID: 3, Email: "x@example.com", PasswordHash: "corrupted", IsActive: true}
		_, err := AuthenticateUser(ctx, userDB(broken, nil), "x@example.com", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive user with correct password", func(t *testing.T) {
		inactive := &model.User{ID: 2, Email: "bob@example.com", PasswordHash: hash, IsActive: false}
		_, err := AuthenticateUser(ctx, userDB(inactive, nil), "bob@example.com", "S3curePass!")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("db error passes through", func(t *testing.T) {
		_, err := AuthenticateUser(ctx, userDB(nil, errors.New("boom")), "alice@example.com", "S3curePass!")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestDeleteUserAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes projects then user in one transaction", func(t *testing.T) {
		var deleted []string
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
				deleted = append(deleted, sql)
				return pgconn.CommandTag{}, nil
			},
		}
		tx := &database.FakeTx{FakeDB: db}
		db.BeginFn = func(context.Context) (database.Tx, error) { return tx, nil }

		require.NoError(t, DeleteUserAccount(ctx, db, 7))
		require.Len(t, deleted, 2)
		require.Contains(t, deleted[0], "DELETE FROM projects")
		require.Contains(t, deleted[1], "DELETE FROM users")
		require.True(t, tx.Committed)
		require.False(t, tx.RolledBack)
	})

	t.Run("rolls back when project delete fails", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("boom")
			},
		}
		tx := &database.FakeTx{FakeDB: db}
		db.BeginFn = func(context.Context) (database.Tx, error) { return tx, nil }

		require.Error(t, DeleteUserAccount(ctx, db, 7))
		require.True(t, tx.RolledBack)
		require.False(t, tx.Committed)
	})
}
