package service

import (
	"context"
	"time"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/repository"
)

type circulationService struct {
	loans repository.LoanRepository
}

func NewCirculationService(loans repository.LoanRepository) CirculationService {
	return &circulationService{loans: loans}
}

func (s *circulationService) ListLoans(ctx context.Context) ([]domain.LoanDetail, error) {
	return s.loans.ListDetailed(ctx)
}

func (s *circulationService) ListPendingReturns(ctx context.Context) ([]domain.LoanDetail, error) {
	open, err := s.loans.ListOpenDetailed(ctx)
	if err != nil {
		return nil, err
	}
	var pending []domain.LoanDetail
	for _, d := range open {
		if d.State == domain.LoanStatePendingReview {
			pending = append(pending, d)
		}
	}
	return pending, nil
}

func (s *circulationService) ListOverdue(ctx context.Context, now time.Time) ([]OverdueLoan, error) {
	open, err := s.loans.ListOpenDetailed(ctx)
	if err != nil {
		return nil, err
	}
	var overdue []OverdueLoan
	for _, d := range open {
		if domain.Overdue(&d.Loan, now) {
			overdue = append(overdue, OverdueLoan{
				LoanDetail: d,
				DaysOut:    domain.ElapsedDays(d.IssuedAt, now),
			})
		}
	}
	return overdue, nil
}

func (s *circulationService) Summary(ctx context.Context, now time.Time) (*domain.CirculationSummary, error) {
	open, err := s.loans.ListOpenDetailed(ctx)
	if err != nil {
		return nil, err
	}
	loans := make([]domain.Loan, len(open))
	for i, d := range open {
		loans[i] = d.Loan
	}
	sum := domain.Summarize(loans, now)
	return &sum, nil
}
