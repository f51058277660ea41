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

type borrowerRepository struct {
	db *sql.DB
}

func NewBorrowerRepository(db *sql.DB) repository.BorrowerRepository {
	return &borrowerRepository{db: db}
}

func (r *borrowerRepository) Create(ctx context.Context, b *domain.Borrower) error {
	query := `INSERT INTO borrowers (code, name, email, phone, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, b.Code, b.Name, b.Email, b.Phone, time.Now()).Scan(&b.ID, &b.CreatedOn)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrBorrowerCodeTaken
		}
		return domain.StoreError("insert borrower", err)
	}
	return nil
}

func (r *borrowerRepository) GetByID(ctx context.Context, id int32) (*domain.Borrower, error) {
	b := &domain.Borrower{}
	query := `SELECT id, code, name, email, phone, created_on FROM borrowers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Code, &b.Name, &b.Email, &b.Phone, &b.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBorrowerNotFound
		}
		return nil, domain.StoreError("get borrower", err)
	}
	return b, nil
}

func (r *borrowerRepository) GetByCode(ctx context.Context, code string) (*domain.Borrower, error) {
	b := &domain.Borrower{}
	query := `SELECT id, code, name, email, phone, created_on FROM borrowers WHERE code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&b.ID, &b.Code, &b.Name, &b.Email, &b.Phone, &b.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBorrowerNotFound
		}
		return nil, domain.StoreError("get borrower by code", err)
	}
	return b, nil
}

func (r *borrowerRepository) List(ctx context.Context) ([]domain.Borrower, error) {
	query := `SELECT id, code, name, email, phone, created_on FROM borrowers ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.StoreError("list borrowers", err)
	}
	defer rows.Close()

	var borrowers []domain.Borrower
	for rows.Next() {
		var b domain.Borrower
		if err := rows.Scan(&b.ID, &b.Code, &b.Name, &b.Email, &b.Phone, &b.CreatedOn); err != nil {
			return nil, domain.StoreError("scan borrower", err)
		}
		borrowers = append(borrowers, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError("list borrowers", err)
	}
	return borrowers, nil
}
