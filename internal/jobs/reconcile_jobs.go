package jobs

import (
	"context"

	"libtrack-backend/internal/logger"
)

// ReconcileAssetStatus repairs the partial-failure window left by a return
// approval whose asset release never landed: the loan is CLOSED but the
// asset still reads ISSUED. Single-record writes cannot close that window
// atomically, so this pass flips such assets back to AVAILABLE.
func (jr *JobRunner) ReconcileAssetStatus() {
	jr.runWithRecovery("ReconcileAssetStatus", func() {
		ctx := context.Background()

		query := `
			UPDATE assets
			SET status = 'AVAILABLE'
			WHERE status = 'ISSUED'
			  AND NOT EXISTS (
			      SELECT 1 FROM loans
			      WHERE loans.asset_id = assets.id
			        AND loans.state IN ('ACTIVE', 'PENDING_REVIEW')
			  )
			RETURNING id, code
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to reconcile asset status", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id   int32
				code string
			)
			if err := rows.Scan(&id, &code); err != nil {
				logger.Error("Failed to scan repaired asset", "error", err)
				continue
			}
			logger.Info("Released stranded asset", "asset_id", id, "asset_code", code)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating repaired assets", "error", err)
			return
		}
		logger.Info("Asset reconciliation finished", "repaired", count)

		// The inverse anomaly (AVAILABLE asset with an open loan) means the
		// issue compensation failed; it needs a human decision, so it is
		// only reported.
		anomalyQuery := `
			SELECT a.id, a.code, l.id
			FROM assets a
			JOIN loans l ON l.asset_id = a.id
			WHERE a.status = 'AVAILABLE'
			  AND l.state IN ('ACTIVE', 'PENDING_REVIEW')
		`
		anomalies, err := jr.db.QueryContext(ctx, anomalyQuery)
		if err != nil {
			logger.Error("Failed to scan for status anomalies", "error", err)
			return
		}
		defer anomalies.Close()

		for anomalies.Next() {
			var (
				assetID int32
				code    string
				loanID  int32
			)
			if err := anomalies.Scan(&assetID, &code, &loanID); err != nil {
				logger.Error("Failed to scan status anomaly", "error", err)
				continue
			}
			logger.Error("Available asset has an open loan", "asset_id", assetID, "asset_code", code, "loan_id", loanID)
		}
		if err := anomalies.Err(); err != nil {
			logger.Error("Error iterating status anomalies", "error", err)
		}
	})
}
