package postgres

import (
	"database/sql"

	"libtrack-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AssetRepository
	repository.BorrowerRepository
	repository.LoanRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		AssetRepository:    NewAssetRepository(db),
		BorrowerRepository: NewBorrowerRepository(db),
		LoanRepository:     NewLoanRepository(db),
	}
}
