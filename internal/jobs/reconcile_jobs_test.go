package jobs

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileAssetStatus(t *testing.T) {
	t.Run("releases stranded assets and scans for anomalies", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("UPDATE assets").
			WillReturnRows(sqlmock.NewRows([]string{"id", "code"}).
				AddRow(int32(3), "A1B2").
				AddRow(int32(9), "C3D4"))
		mock.ExpectQuery("SELECT a.id, a.code, l.id").
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "loan_id"}))

		jr := NewJobRunner(db, nil, nil, nil)
		jr.ReconcileAssetStatus()

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports the inverse anomaly without touching it", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("UPDATE assets").
			WillReturnRows(sqlmock.NewRows([]string{"id", "code"}))
		mock.ExpectQuery("SELECT a.id, a.code, l.id").
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "loan_id"}).
				AddRow(int32(5), "E5F6", int32(42)))

		jr := NewJobRunner(db, nil, nil, nil)
		jr.ReconcileAssetStatus()

		// only the two reads; no repair write for the anomaly
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("survives a store outage", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("UPDATE assets").WillReturnError(assert.AnError)

		jr := NewJobRunner(db, nil, nil, nil)
		jr.ReconcileAssetStatus()

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunWithRecovery(t *testing.T) {
	jr := NewJobRunner(nil, nil, nil, nil)

	assert.NotPanics(t, func() {
		jr.runWithRecovery("panicky", func() { panic("boom") })
	})
}
