package repository

import (
	"context"
	"time"

	"libtrack-backend/internal/domain"
)

// The catalog store contract. Implementations must offer per-record
// conditional writes (UpdateStatus, UpdateState, DeleteAvailable fail with
// domain.ErrStaleRecord when the guard column no longer matches) but are
// not assumed to support multi-record transactions.

type AssetRepository interface {
	Create(ctx context.Context, a *domain.Asset) error
	GetByID(ctx context.Context, id int32) (*domain.Asset, error)
	GetByCode(ctx context.Context, code string) (*domain.Asset, error)
	List(ctx context.Context) ([]domain.Asset, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Asset, error)
	// UpdateStatus flips the status only if the stored value still equals
	// from.
	UpdateStatus(ctx context.Context, id int32, from, to domain.AssetStatus) error
	// DeleteAvailable removes the asset only while its status is AVAILABLE.
	DeleteAvailable(ctx context.Context, id int32) error
}

type BorrowerRepository interface {
	Create(ctx context.Context, b *domain.Borrower) error
	GetByID(ctx context.Context, id int32) (*domain.Borrower, error)
	GetByCode(ctx context.Context, code string) (*domain.Borrower, error)
	List(ctx context.Context) ([]domain.Borrower, error)
}

type LoanRepository interface {
	Create(ctx context.Context, l *domain.Loan) error
	GetByID(ctx context.Context, id int32) (*domain.Loan, error)
	// GetOpenByAsset returns the single ACTIVE or PENDING_REVIEW loan for
	// the asset, or domain.ErrNoOpenLoan.
	GetOpenByAsset(ctx context.Context, assetID int32) (*domain.Loan, error)
	ListDetailed(ctx context.Context) ([]domain.LoanDetail, error)
	ListOpenDetailed(ctx context.Context) ([]domain.LoanDetail, error)
	// UpdateState advances the loan state only if the stored state still
	// equals from, stamping return_requested_at or closed_at with at
	// depending on the target state.
	UpdateState(ctx context.Context, id int32, from, to domain.LoanState, at time.Time) error
}
