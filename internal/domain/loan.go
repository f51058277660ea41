package domain

import "time"

type LoanState string

const (
	LoanStateActive        LoanState = "ACTIVE"
	LoanStatePendingReview LoanState = "PENDING_REVIEW"
	LoanStateClosed        LoanState = "CLOSED"
)

// Loan records one asset being held by one borrower. The only legal state
// order is ACTIVE -> PENDING_REVIEW -> CLOSED; a voided loan (issue lost a
// race) jumps ACTIVE -> CLOSED. CLOSED loans are immutable history.
type Loan struct {
	ID                int32      `json:"id"`
	AssetID           int32      `json:"asset_id"`
	BorrowerID        int32      `json:"borrower_id"`
	IssuedAt          time.Time  `json:"issued_at"`
	ReturnRequestedAt *time.Time `json:"return_requested_at,omitempty"`
	ClosedAt          *time.Time `json:"closed_at,omitempty"`
	State             LoanState  `json:"state"`
}

// Open reports whether the loan still blocks re-issue of its asset.
func (l *Loan) Open() bool {
	return l.State == LoanStateActive || l.State == LoanStatePendingReview
}

// LoanDetail is a loan joined with the asset and borrower it references,
// for console listings.
type LoanDetail struct {
	Loan
	AssetCode    string `json:"asset_code"`
	AssetTitle   string `json:"asset_title"`
	BorrowerCode string `json:"borrower_code"`
	BorrowerName string `json:"borrower_name"`
}
