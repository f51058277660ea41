package service

import (
	"context"
	"errors"
	"time"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/logger"
	"libtrack-backend/internal/repository"
)

// fallbackBorrowerName is shown on the kiosk confirmation when the
// borrower record cannot be read back after a return is logged.
const fallbackBorrowerName = "Borrower"

type lendingService struct {
	assets    repository.AssetRepository
	borrowers repository.BorrowerRepository
	loans     repository.LoanRepository
}

func NewLendingService(
	assets repository.AssetRepository,
	borrowers repository.BorrowerRepository,
	loans repository.LoanRepository,
) LendingService {
	return &lendingService{
		assets:    assets,
		borrowers: borrowers,
		loans:     loans,
	}
}

func (s *lendingService) LookupAsset(ctx context.Context, code string) (*domain.Asset, error) {
	if len(code) != domain.AssetCodeLength {
		return nil, domain.ErrInvalidAssetCode
	}
	return s.assets.GetByCode(ctx, code)
}

func (s *lendingService) Issue(ctx context.Context, assetCode, borrowerCode string, reg *domain.Registration) (*domain.Loan, *domain.Borrower, error) {
	if len(assetCode) != domain.AssetCodeLength {
		return nil, nil, domain.ErrInvalidAssetCode
	}
	if borrowerCode == "" {
		return nil, nil, domain.ErrMissingBorrowerCode
	}

	asset, err := s.assets.GetByCode(ctx, assetCode)
	if err != nil {
		return nil, nil, err
	}
	if asset.Status != domain.AssetStatusAvailable {
		return nil, nil, domain.ErrAssetAlreadyIssued
	}

	borrower, err := s.borrowers.GetByCode(ctx, borrowerCode)
	if errors.Is(err, domain.ErrBorrowerNotFound) {
		// First time this code has been seen: register the borrower now.
		// Stored contact details of a returning borrower are never
		// overwritten through this path.
		if !reg.Complete() {
			return nil, nil, domain.ErrMissingRegistration
		}
		borrower = &domain.Borrower{
			Code:  borrowerCode,
			Name:  reg.Name,
			Email: reg.Email,
			Phone: reg.Phone,
		}
		if err := s.borrowers.Create(ctx, borrower); err != nil {
			if errors.Is(err, domain.ErrBorrowerCodeTaken) {
				// Another terminal registered this code between our read and
				// the insert. The stored record wins; proceed with it.
				borrower, err = s.borrowers.GetByCode(ctx, borrowerCode)
				if err != nil {
					return nil, nil, err
				}
			} else {
				return nil, nil, err
			}
		}
	} else if err != nil {
		return nil, nil, err
	}

	loan := &domain.Loan{
		AssetID:    asset.ID,
		BorrowerID: borrower.ID,
		IssuedAt:   time.Now().UTC(),
		State:      domain.LoanStateActive,
	}
	if err := s.loans.Create(ctx, loan); err != nil {
		return nil, nil, err
	}

	// The status flip is conditioned on the asset still being AVAILABLE.
	// Losing here means another terminal issued the asset between our read
	// and this write.
	if err := s.assets.UpdateStatus(ctx, asset.ID, domain.AssetStatusAvailable, domain.AssetStatusIssued); err != nil {
		if errors.Is(err, domain.ErrStaleRecord) {
			// Void the loan we just created so no active loan references an
			// asset we never got.
			now := time.Now().UTC()
			if verr := s.loans.UpdateState(ctx, loan.ID, domain.LoanStateActive, domain.LoanStateClosed, now); verr != nil {
				logger.Error("failed to void loan after lost issue race",
					"loan_id", loan.ID, "asset_id", asset.ID, "error", verr)
			}
			return nil, nil, domain.ErrAssetAlreadyIssued
		}
		return nil, nil, err
	}

	asset.Status = domain.AssetStatusIssued
	logger.Info("asset issued", "asset_code", asset.Code, "borrower_code", borrower.Code, "loan_id", loan.ID)
	return loan, borrower, nil
}

func (s *lendingService) RequestReturn(ctx context.Context, assetCode string) (string, error) {
	if len(assetCode) != domain.AssetCodeLength {
		return "", domain.ErrInvalidAssetCode
	}

	asset, err := s.assets.GetByCode(ctx, assetCode)
	if err != nil {
		return "", err
	}
	if asset.Status != domain.AssetStatusIssued {
		return "", domain.ErrAssetNotIssued
	}

	// The store may be stale relative to the status we just read, so the
	// open loan is checked explicitly rather than trusted from the status.
	loan, err := s.loans.GetOpenByAsset(ctx, asset.ID)
	if err != nil {
		return "", err
	}
	if loan.State != domain.LoanStateActive {
		return "", domain.ErrReturnAlreadyRequested
	}

	now := time.Now().UTC()
	if err := s.loans.UpdateState(ctx, loan.ID, domain.LoanStateActive, domain.LoanStatePendingReview, now); err != nil {
		if errors.Is(err, domain.ErrStaleRecord) {
			return "", domain.ErrReturnAlreadyRequested
		}
		return "", err
	}

	name := fallbackBorrowerName
	borrower, err := s.borrowers.GetByID(ctx, loan.BorrowerID)
	if err != nil {
		logger.Warn("borrower lookup failed for return confirmation", "borrower_id", loan.BorrowerID, "error", err)
	} else {
		name = borrower.Name
	}
	logger.Info("return requested", "asset_code", asset.Code, "loan_id", loan.ID)
	return name, nil
}

func (s *lendingService) ApproveReturn(ctx context.Context, loanID, assetID int32) (*domain.Loan, error) {
	loan, err := s.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.State != domain.LoanStatePendingReview {
		return nil, domain.ErrLoanNotPendingReview
	}
	if loan.AssetID != assetID {
		return nil, domain.ErrAssetMismatch
	}

	// Close the loan first: once this commits the return is approved even
	// if the asset release below fails.
	now := time.Now().UTC()
	if err := s.loans.UpdateState(ctx, loan.ID, domain.LoanStatePendingReview, domain.LoanStateClosed, now); err != nil {
		if errors.Is(err, domain.ErrStaleRecord) {
			return nil, domain.ErrLoanNotPendingReview
		}
		return nil, err
	}
	loan.State = domain.LoanStateClosed
	loan.ClosedAt = &now

	if err := s.assets.UpdateStatus(ctx, loan.AssetID, domain.AssetStatusIssued, domain.AssetStatusAvailable); err != nil {
		if errors.Is(err, domain.ErrStaleRecord) {
			// The asset was not ISSUED anymore; nothing left to release.
			logger.Warn("asset already released on return approval", "asset_id", loan.AssetID, "loan_id", loan.ID)
			return loan, nil
		}
		// Loan closed, asset still ISSUED: the nightly reconciliation pass
		// repairs this window.
		logger.Error("asset release failed after loan close", "asset_id", loan.AssetID, "loan_id", loan.ID, "error", err)
		return nil, err
	}

	logger.Info("return approved", "loan_id", loan.ID, "asset_id", loan.AssetID)
	return loan, nil
}
