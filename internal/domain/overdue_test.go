package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElapsedDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		issuedAt time.Time
		want     int
	}{
		{"same moment", now, 0},
		{"two hours out rounds up to one day", now.Add(-2 * time.Hour), 1},
		{"exactly ten days", now.Add(-10 * 24 * time.Hour), 10},
		{"ten days and an hour rounds to eleven", now.Add(-(10*24 + 1) * time.Hour), 11},
		{"clock skew uses absolute difference", now.Add(3 * time.Hour), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElapsedDays(tt.issuedAt, now))
		})
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	requested := now.Add(-time.Hour)

	tests := []struct {
		name string
		loan Loan
		want bool
	}{
		{
			name: "active loan out eleven days is overdue",
			loan: Loan{State: LoanStateActive, IssuedAt: now.Add(-11 * 24 * time.Hour)},
			want: true,
		},
		{
			name: "active loan out exactly ten days is not overdue",
			loan: Loan{State: LoanStateActive, IssuedAt: now.Add(-10 * 24 * time.Hour)},
			want: false,
		},
		{
			name: "pending review is never overdue",
			loan: Loan{State: LoanStatePendingReview, IssuedAt: now.Add(-30 * 24 * time.Hour), ReturnRequestedAt: &requested},
			want: false,
		},
		{
			name: "closed is never overdue",
			loan: Loan{State: LoanStateClosed, IssuedAt: now.Add(-30 * 24 * time.Hour)},
			want: false,
		},
		{
			name: "logged return excludes an otherwise late loan",
			loan: Loan{State: LoanStateActive, IssuedAt: now.Add(-30 * 24 * time.Hour), ReturnRequestedAt: &requested},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overdue(&tt.loan, now))
		})
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	requested := now.Add(-time.Hour)

	loans := []Loan{
		{State: LoanStateActive, IssuedAt: now.Add(-2 * 24 * time.Hour)},
		{State: LoanStateActive, IssuedAt: now.Add(-12 * 24 * time.Hour)},
		{State: LoanStatePendingReview, IssuedAt: now.Add(-5 * 24 * time.Hour), ReturnRequestedAt: &requested},
		{State: LoanStateClosed, IssuedAt: now.Add(-20 * 24 * time.Hour)},
	}

	sum := Summarize(loans, now)
	assert.Equal(t, 2, sum.ActiveCount)
	assert.Equal(t, 1, sum.PendingReviewCount)
	assert.Equal(t, 1, sum.OverdueCount)
}

func TestLoanOpen(t *testing.T) {
	assert.True(t, (&Loan{State: LoanStateActive}).Open())
	assert.True(t, (&Loan{State: LoanStatePendingReview}).Open())
	assert.False(t, (&Loan{State: LoanStateClosed}).Open())
}
