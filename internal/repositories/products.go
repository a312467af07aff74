package repositories

import (
	"context"

	"github.com/Totarae/EazyBank/internal/model"
)

// LoanRepository хранит кредиты (таблица loans).
type LoanRepository struct {
	DB Querier
}

func NewLoanRepository(db Querier) *LoanRepository {
	return &LoanRepository{DB: db}
}

func (r *LoanRepository) Create(ctx context.Context, l *model.Loan) error {
	query := `INSERT INTO loans (mobile_number, loan_number, loan_type, total_loan, amount_paid, outstanding_amount)
              VALUES ($1, $2, $3, $4, $5, $6)
              RETURNING loan_id`
	err := r.DB.QueryRow(ctx, query,
		l.MobileNumber, l.LoanNumber, l.LoanType, l.TotalLoan, l.AmountPaid, l.OutstandingAmount,
	).Scan(&l.LoanID)
	return mapErr("insert loan", err)
}

const loanColumns = `loan_id, mobile_number, loan_number, loan_type, total_loan, amount_paid, outstanding_amount`

func (r *LoanRepository) FindByMobileNumber(ctx context.Context, mobileNumber string) (*model.Loan, error) {
	return r.findOne(ctx, `SELECT `+loanColumns+` FROM loans WHERE mobile_number = $1`, mobileNumber)
}

func (r *LoanRepository) FindByLoanNumber(ctx context.Context, loanNumber string) (*model.Loan, error) {
	return r.findOne(ctx, `SELECT `+loanColumns+` FROM loans WHERE loan_number = $1`, loanNumber)
}

func (r *LoanRepository) findOne(ctx context.Context, query, arg string) (*model.Loan, error) {
	l := &model.Loan{}
	err := r.DB.QueryRow(ctx, query, arg).Scan(
		&l.LoanID, &l.MobileNumber, &l.LoanNumber, &l.LoanType,
		&l.TotalLoan, &l.AmountPaid, &l.OutstandingAmount,
	)
	if err != nil {
		return nil, mapErr("select loan", err)
	}
	return l, nil
}

func (r *LoanRepository) Update(ctx context.Context, l *model.Loan) error {
	query := `UPDATE loans
              SET mobile_number = $2, loan_number = $3, loan_type = $4,
                  total_loan = $5, amount_paid = $6, outstanding_amount = $7
              WHERE loan_id = $1`
	return execOne(ctx, r.DB, "update loan", query,
		l.LoanID, l.MobileNumber, l.LoanNumber, l.LoanType, l.TotalLoan, l.AmountPaid, l.OutstandingAmount)
}

func (r *LoanRepository) Delete(ctx context.Context, loanID int64) error {
	return execOne(ctx, r.DB, "delete loan", `DELETE FROM loans WHERE loan_id = $1`, loanID)
}

// CardRepository хранит карты (таблица cards).
type CardRepository struct {
	DB Querier
}

func NewCardRepository(db Querier) *CardRepository {
	return &CardRepository{DB: db}
}

func (r *CardRepository) Create(ctx context.Context, c *model.Card) error {
	query := `INSERT INTO cards (mobile_number, card_number, card_type, total_limit, amount_used, available_amount)
              VALUES ($1, $2, $3, $4, $5, $6)
              RETURNING card_id`
	err := r.DB.QueryRow(ctx, query,
		c.MobileNumber, c.CardNumber, c.CardType, c.TotalLimit, c.AmountUsed, c.AvailableAmount,
	).Scan(&c.CardID)
	return mapErr("insert card", err)
}

const cardColumns = `card_id, mobile_number, card_number, card_type, total_limit, amount_used, available_amount`

func (r *CardRepository) FindByMobileNumber(ctx context.Context, mobileNumber string) (*model.Card, error) {
	return r.findOne(ctx, `SELECT `+cardColumns+` FROM cards WHERE mobile_number = $1`, mobileNumber)
}

func (r *CardRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*model.Card, error) {
	return r.findOne(ctx, `SELECT `+cardColumns+` FROM cards WHERE card_number = $1`, cardNumber)
}

func (r *CardRepository) findOne(ctx context.Context, query, arg string) (*model.Card, error) {
	c := &model.Card{}
	err := r.DB.QueryRow(ctx, query, arg).Scan(
		&c.CardID, &c.MobileNumber, &c.CardNumber, &c.CardType,
		&c.TotalLimit, &c.AmountUsed, &c.AvailableAmount,
	)
	if err != nil {
		return nil, mapErr("select card", err)
	}
	return c, nil
}

func (r *CardRepository) Update(ctx context.Context, c *model.Card) error {
	query := `UPDATE cards
              SET mobile_number = $2, card_number = $3, card_type = $4,
                  total_limit = $5, amount_used = $6, available_amount = $7
              WHERE card_id = $1`
	return execOne(ctx, r.DB, "update card", query,
		c.CardID, c.MobileNumber, c.CardNumber, c.CardType, c.TotalLimit, c.AmountUsed, c.AvailableAmount)
}

func (r *CardRepository) Delete(ctx context.Context, cardID int64) error {
	return execOne(ctx, r.DB, "delete card", `DELETE FROM cards WHERE card_id = $1`, cardID)
}
