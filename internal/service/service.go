package service

import (
	"context"
	"time"

	"libtrack-backend/internal/domain"
)

// LendingService is the lending engine: pure decision logic over the
// current store state, applied through single-record conditional writes.
// It never retries internally; retry policy belongs to the terminals.
type LendingService interface {
	LookupAsset(ctx context.Context, code string) (*domain.Asset, error)
	Issue(ctx context.Context, assetCode, borrowerCode string, reg *domain.Registration) (*domain.Loan, *domain.Borrower, error)
	// RequestReturn returns the borrower's display name for the kiosk
	// confirmation message.
	RequestReturn(ctx context.Context, assetCode string) (string, error)
	ApproveReturn(ctx context.Context, loanID, assetID int32) (*domain.Loan, error)
}

type CatalogService interface {
	AddAsset(ctx context.Context, title, category, code string) (*domain.Asset, error)
	DeleteAsset(ctx context.Context, id int32) error
	ListAssets(ctx context.Context) ([]domain.Asset, error)
	ListAssetsByCategory(ctx context.Context, category string) ([]domain.Asset, error)
}

// CirculationService serves the admin console's read-only queries. The
// overdue classification is recomputed against the supplied reference time
// on every call.
type CirculationService interface {
	ListLoans(ctx context.Context) ([]domain.LoanDetail, error)
	ListPendingReturns(ctx context.Context) ([]domain.LoanDetail, error)
	ListOverdue(ctx context.Context, now time.Time) ([]OverdueLoan, error)
	Summary(ctx context.Context, now time.Time) (*domain.CirculationSummary, error)
}

// OverdueLoan is an overdue classification result for display.
type OverdueLoan struct {
	domain.LoanDetail
	DaysOut int `json:"days_out"`
}
