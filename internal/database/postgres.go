package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxDB 包裝 *pgxpool.Pool，讓 Begin 回傳本套件的 Tx 介面
type pgxDB struct {
	*pgxpool.Pool
}

func (d pgxDB) Begin(ctx context.Context) (Tx, error) {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	return pgxDB{pool}, nil
}
