package storage

import (
	"context"

	"github.com/Totarae/EazyBank/internal/model"
	"go.uber.org/zap"
)

type loanRow struct {
	LoanID            int64  `json:"loan_id"`
	MobileNumber      string `json:"mobile_number"`
	LoanNumber        string `json:"loan_number"`
	LoanType          string `json:"loan_type"`
	TotalLoan         int64  `json:"total_loan"`
	AmountPaid        int64  `json:"amount_paid"`
	OutstandingAmount int64  `json:"outstanding_amount"`
}

func toLoanRow(l *model.Loan) loanRow {
	return loanRow(*l)
}

func (r loanRow) model() *model.Loan {
	l := model.Loan(r)
	return &l
}

// LoanStore — in-memory таблица кредитов
type LoanStore struct {
	t *table[loanRow]
}

func NewLoanStore(file string, logger *zap.Logger) *LoanStore {
	return &LoanStore{t: newTable[loanRow](file, logger)}
}

// Create присваивает LoanID. Номер телефона и номер кредита уникальны.
func (s *LoanStore) Create(_ context.Context, l *model.Loan) error {
	row, err := s.t.insert(toLoanRow(l),
		func(r *loanRow, next int64) int64 {
			r.LoanID = next
			return next
		},
		func(existing loanRow) bool {
			return existing.MobileNumber == l.MobileNumber || existing.LoanNumber == l.LoanNumber
		},
	)
	if err != nil {
		return err
	}
	l.LoanID = row.LoanID
	return nil
}

func (s *LoanStore) FindByMobileNumber(_ context.Context, mobileNumber string) (*model.Loan, error) {
	row, err := s.t.first(func(r loanRow) bool { return r.MobileNumber == mobileNumber })
	if err != nil {
		return nil, err
	}
	return row.model(), nil
}

func (s *LoanStore) FindByLoanNumber(_ context.Context, loanNumber string) (*model.Loan, error) {
	row, err := s.t.first(func(r loanRow) bool { return r.LoanNumber == loanNumber })
	if err != nil {
		return nil, err
	}
	return row.model(), nil
}

func (s *LoanStore) Update(_ context.Context, l *model.Loan) error {
	return s.t.update(l.LoanID, toLoanRow(l), func(existing loanRow) bool {
		return existing.MobileNumber == l.MobileNumber || existing.LoanNumber == l.LoanNumber
	})
}

func (s *LoanStore) Delete(_ context.Context, loanID int64) error {
	return s.t.delete(loanID)
}
