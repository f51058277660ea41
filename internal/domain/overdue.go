package domain

import (
	"math"
	"time"
)

// GracePeriodDays is the lending policy constant: an active loan out for
// more than this many days is overdue.
const GracePeriodDays = 10

// ElapsedDays returns the number of days between issue and now, rounded up.
// A loan returned within the same day counts as one day out.
func ElapsedDays(issuedAt, now time.Time) int {
	diff := now.Sub(issuedAt)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// Overdue reports whether the loan has exceeded the grace period at the
// given reference time. Only active loans with no logged return can be
// overdue; pending-review and closed loans never are.
func Overdue(l *Loan, now time.Time) bool {
	if l.State != LoanStateActive || l.ReturnRequestedAt != nil {
		return false
	}
	return ElapsedDays(l.IssuedAt, now) > GracePeriodDays
}

type CirculationSummary struct {
	ActiveCount        int `json:"active_count"`
	PendingReviewCount int `json:"pending_review_count"`
	OverdueCount       int `json:"overdue_count"`
}

// Summarize partitions the open-loan set at the given reference time. The
// result is recomputed on every call; it is never cached because "now"
// keeps advancing.
func Summarize(loans []Loan, now time.Time) CirculationSummary {
	var sum CirculationSummary
	for i := range loans {
		switch loans[i].State {
		case LoanStateActive:
			sum.ActiveCount++
			if Overdue(&loans[i], now) {
				sum.OverdueCount++
			}
		case LoanStatePendingReview:
			sum.PendingReviewCount++
		}
	}
	return sum
}
