package service_test

import (
	"context"
	"time"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockAssetRepository struct {
	mock.Mock
}

var _ repository.AssetRepository = (*MockAssetRepository)(nil)

func (m *MockAssetRepository) Create(ctx context.Context, a *domain.Asset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id int32) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) GetByCode(ctx context.Context, code string) (*domain.Asset, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListByCategory(ctx context.Context, category string) ([]domain.Asset, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.AssetStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteAvailable(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBorrowerRepository struct {
	mock.Mock
}

var _ repository.BorrowerRepository = (*MockBorrowerRepository)(nil)

func (m *MockBorrowerRepository) Create(ctx context.Context, b *domain.Borrower) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBorrowerRepository) GetByID(ctx context.Context, id int32) (*domain.Borrower, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrower), args.Error(1)
}

func (m *MockBorrowerRepository) GetByCode(ctx context.Context, code string) (*domain.Borrower, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrower), args.Error(1)
}

func (m *MockBorrowerRepository) List(ctx context.Context) ([]domain.Borrower, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Borrower), args.Error(1)
}

type MockLoanRepository struct {
	mock.Mock
}

var _ repository.LoanRepository = (*MockLoanRepository)(nil)

func (m *MockLoanRepository) Create(ctx context.Context, l *domain.Loan) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) GetOpenByAsset(ctx context.Context, assetID int32) (*domain.Loan, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListDetailed(ctx context.Context) ([]domain.LoanDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanDetail), args.Error(1)
}

func (m *MockLoanRepository) ListOpenDetailed(ctx context.Context) ([]domain.LoanDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanDetail), args.Error(1)
}

func (m *MockLoanRepository) UpdateState(ctx context.Context, id int32, from, to domain.LoanState, at time.Time) error {
	args := m.Called(ctx, id, from, to, at)
	return args.Error(0)
}
