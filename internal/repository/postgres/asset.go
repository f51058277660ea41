package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/repository"

	"github.com/lib/pq"
)

// uniqueViolation is the postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type assetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) repository.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, a *domain.Asset) error {
	query := `INSERT INTO assets (code, title, category, status, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, a.Code, a.Title, a.Category, a.Status, time.Now()).Scan(&a.ID, &a.CreatedOn)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAssetCodeTaken
		}
		return domain.StoreError("insert asset", err)
	}
	return nil
}

func (r *assetRepository) GetByID(ctx context.Context, id int32) (*domain.Asset, error) {
	a := &domain.Asset{}
	query := `SELECT id, code, title, category, status, created_on FROM assets WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Code, &a.Title, &a.Category, &a.Status, &a.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, domain.StoreError("get asset", err)
	}
	return a, nil
}

func (r *assetRepository) GetByCode(ctx context.Context, code string) (*domain.Asset, error) {
	a := &domain.Asset{}
	query := `SELECT id, code, title, category, status, created_on FROM assets WHERE code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&a.ID, &a.Code, &a.Title, &a.Category, &a.Status, &a.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, domain.StoreError("get asset by code", err)
	}
	return a, nil
}

func (r *assetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	query := `SELECT id, code, title, category, status, created_on FROM assets ORDER BY created_on DESC`
	return r.queryAssets(ctx, query)
}

func (r *assetRepository) ListByCategory(ctx context.Context, category string) ([]domain.Asset, error) {
	query := `SELECT id, code, title, category, status, created_on FROM assets WHERE category = $1 ORDER BY created_on DESC`
	return r.queryAssets(ctx, query, category)
}

func (r *assetRepository) queryAssets(ctx context.Context, query string, args ...interface{}) ([]domain.Asset, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.StoreError("list assets", err)
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		var a domain.Asset
		if err := rows.Scan(&a.ID, &a.Code, &a.Title, &a.Category, &a.Status, &a.CreatedOn); err != nil {
			return nil, domain.StoreError("scan asset", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError("list assets", err)
	}
	return assets, nil
}

// UpdateStatus is the compare-and-set the lending engine relies on: the
// write only lands if the status column still holds the value observed at
// read time.
func (r *assetRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.AssetStatus) error {
	query := `UPDATE assets SET status = $1 WHERE id = $2 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return domain.StoreError("update asset status", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.StoreError("update asset status", err)
	}
	if n == 0 {
		return domain.ErrStaleRecord
	}
	return nil
}

func (r *assetRepository) DeleteAvailable(ctx context.Context, id int32) error {
	query := `DELETE FROM assets WHERE id = $1 AND status = $2`
	res, err := r.db.ExecContext(ctx, query, id, domain.AssetStatusAvailable)
	if err != nil {
		return domain.StoreError("delete asset", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.StoreError("delete asset", err)
	}
	if n == 0 {
		return domain.ErrStaleRecord
	}
	return nil
}
