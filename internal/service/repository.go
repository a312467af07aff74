package service

import (
	"context"

	"github.com/Totarae/EazyBank/internal/model"
)

//go:generate mockgen -destination=mocks_test.go -package=service_test github.com/Totarae/EazyBank/internal/service CustomerRepository,AccountRepository,LoansFetcher,CardsFetcher

// Хранилища возвращают storage.ErrNotFound, если записи нет,
// и storage.ErrAlreadyExists при нарушении уникальности.

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByMobileNumber(ctx context.Context, mobileNumber string) (*model.Customer, error)
	FindByID(ctx context.Context, customerID int64) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, customerID int64) error
}

type AccountRepository interface {
	Create(ctx context.Context, a *model.Account) error
	FindByCustomerID(ctx context.Context, customerID int64) (*model.Account, error)
	FindByAccountNumber(ctx context.Context, accountNumber int64) (*model.Account, error)
	Update(ctx context.Context, a *model.Account) error
	DeleteByCustomerID(ctx context.Context, customerID int64) error
}

type LoanRepository interface {
	Create(ctx context.Context, l *model.Loan) error
	FindByMobileNumber(ctx context.Context, mobileNumber string) (*model.Loan, error)
	FindByLoanNumber(ctx context.Context, loanNumber string) (*model.Loan, error)
	Update(ctx context.Context, l *model.Loan) error
	Delete(ctx context.Context, loanID int64) error
}

type CardRepository interface {
	Create(ctx context.Context, c *model.Card) error
	FindByMobileNumber(ctx context.Context, mobileNumber string) (*model.Card, error)
	FindByCardNumber(ctx context.Context, cardNumber string) (*model.Card, error)
	Update(ctx context.Context, c *model.Card) error
	Delete(ctx context.Context, cardID int64) error
}

// LoansFetcher — адаптер сервиса loans. ok=false означает, что данных нет
// или сервис недоступен; err — только для ответа, который нельзя разобрать.
type LoansFetcher interface {
	FetchLoan(ctx context.Context, correlationID, mobileNumber string) (loan *model.Loan, ok bool, err error)
}

// CardsFetcher — адаптер сервиса cards, контракт как у LoansFetcher.
type CardsFetcher interface {
	FetchCard(ctx context.Context, correlationID, mobileNumber string) (card *model.Card, ok bool, err error)
}
