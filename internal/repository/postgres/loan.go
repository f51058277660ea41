package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/repository"

	"github.com/lib/pq"
)

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	query := `INSERT INTO loans (asset_id, borrower_id, issued_at, state)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, l.AssetID, l.BorrowerID, l.IssuedAt, l.State).Scan(&l.ID)
	if err != nil {
		// The partial unique index on open loans: the asset already has one,
		// so the caller lost an issue race at the insert.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAssetAlreadyIssued
		}
		return domain.StoreError("insert loan", err)
	}
	return nil
}

func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	l := &domain.Loan{}
	query := `SELECT id, asset_id, borrower_id, issued_at, return_requested_at, closed_at, state FROM loans WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.AssetID, &l.BorrowerID, &l.IssuedAt, &l.ReturnRequestedAt, &l.ClosedAt, &l.State)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, domain.StoreError("get loan", err)
	}
	return l, nil
}

func (r *loanRepository) GetOpenByAsset(ctx context.Context, assetID int32) (*domain.Loan, error) {
	l := &domain.Loan{}
	query := `SELECT id, asset_id, borrower_id, issued_at, return_requested_at, closed_at, state
	          FROM loans WHERE asset_id = $1 AND state IN ($2, $3)`
	err := r.db.QueryRowContext(ctx, query, assetID, domain.LoanStateActive, domain.LoanStatePendingReview).
		Scan(&l.ID, &l.AssetID, &l.BorrowerID, &l.IssuedAt, &l.ReturnRequestedAt, &l.ClosedAt, &l.State)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoOpenLoan
		}
		return nil, domain.StoreError("get open loan", err)
	}
	return l, nil
}

// The asset join is LEFT: closed loans outlive deleted assets.
const loanDetailColumns = `l.id, l.asset_id, l.borrower_id, l.issued_at, l.return_requested_at, l.closed_at, l.state,
	       COALESCE(a.code, ''), COALESCE(a.title, ''), b.code, b.name`

func (r *loanRepository) ListDetailed(ctx context.Context) ([]domain.LoanDetail, error) {
	query := `SELECT ` + loanDetailColumns + `
	          FROM loans l
	          LEFT JOIN assets a ON a.id = l.asset_id
	          JOIN borrowers b ON b.id = l.borrower_id
	          ORDER BY l.issued_at DESC`
	return r.queryDetailed(ctx, query)
}

func (r *loanRepository) ListOpenDetailed(ctx context.Context) ([]domain.LoanDetail, error) {
	query := `SELECT ` + loanDetailColumns + `
	          FROM loans l
	          LEFT JOIN assets a ON a.id = l.asset_id
	          JOIN borrowers b ON b.id = l.borrower_id
	          WHERE l.state IN ($1, $2)
	          ORDER BY l.issued_at DESC`
	return r.queryDetailed(ctx, query, domain.LoanStateActive, domain.LoanStatePendingReview)
}

func (r *loanRepository) queryDetailed(ctx context.Context, query string, args ...interface{}) ([]domain.LoanDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.StoreError("list loans", err)
	}
	defer rows.Close()

	var loans []domain.LoanDetail
	for rows.Next() {
		var d domain.LoanDetail
		if err := rows.Scan(&d.ID, &d.AssetID, &d.BorrowerID, &d.IssuedAt, &d.ReturnRequestedAt, &d.ClosedAt, &d.State,
			&d.AssetCode, &d.AssetTitle, &d.BorrowerCode, &d.BorrowerName); err != nil {
			return nil, domain.StoreError("scan loan", err)
		}
		loans = append(loans, d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError("list loans", err)
	}
	return loans, nil
}

// UpdateState is the conditional write that serializes racing transitions
// on a single loan: whichever caller observes a stale state loses.
func (r *loanRepository) UpdateState(ctx context.Context, id int32, from, to domain.LoanState, at time.Time) error {
	var query string
	switch to {
	case domain.LoanStatePendingReview:
		query = `UPDATE loans SET state = $1, return_requested_at = $2 WHERE id = $3 AND state = $4`
	case domain.LoanStateClosed:
		query = `UPDATE loans SET state = $1, closed_at = $2 WHERE id = $3 AND state = $4`
	default:
		return fmt.Errorf("unsupported loan state transition to %s", to)
	}
	res, err := r.db.ExecContext(ctx, query, to, at, id, from)
	if err != nil {
		return domain.StoreError("update loan state", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.StoreError("update loan state", err)
	}
	if n == 0 {
		return domain.ErrStaleRecord
	}
	return nil
}
