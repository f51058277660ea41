package jobs

import (
	"context"
	"time"

	"libtrack-backend/internal/logger"
)

// SnapshotCirculation logs the nightly circulation picture: open-loan
// counts and every overdue loan. Classification only; notifying borrowers
// is someone else's job.
func (jr *JobRunner) SnapshotCirculation() {
	jr.runWithRecovery("SnapshotCirculation", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		summary, err := jr.circulation.Summary(ctx, now)
		if err != nil {
			logger.Error("Failed to compute circulation summary", "error", err)
			return
		}
		logger.Info("Circulation summary",
			"active", summary.ActiveCount,
			"pending_review", summary.PendingReviewCount,
			"overdue", summary.OverdueCount)

		overdue, err := jr.circulation.ListOverdue(ctx, now)
		if err != nil {
			logger.Error("Failed to list overdue loans", "error", err)
			return
		}
		for _, o := range overdue {
			logger.Warn("Loan overdue",
				"loan_id", o.ID,
				"asset_code", o.AssetCode,
				"asset_title", o.AssetTitle,
				"borrower_code", o.BorrowerCode,
				"days_out", o.DaysOut)
		}
	})
}
