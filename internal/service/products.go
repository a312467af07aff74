package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/Totarae/EazyBank/internal/apperr"
	"github.com/Totarae/EazyBank/internal/model"
	"github.com/Totarae/EazyBank/internal/storage"
	"go.uber.org/zap"
)

const (
	homeLoan         = "Home Loan"
	newLoanLimit     = 100_000
	creditCard       = "Credit Card"
	newCardLimit     = 100_000
	productNumberMin = 100_000_000_000
)

// 12 цифр, первая — 1
func randomProductNumber() string {
	return strconv.FormatInt(productNumberMin+rand.Int64N(900_000_000_000), 10)
}

// LoansService — CRUD кредитов, ключ — номер телефона.
type LoansService struct {
	repo       LoanRepository
	logger     *zap.Logger
	loanNumber func() string
}

func NewLoansService(repo LoanRepository, logger *zap.Logger) *LoansService {
	return &LoansService{repo: repo, logger: logger, loanNumber: randomProductNumber}
}

// CreateLoan выдаёт клиенту стандартный ипотечный кредит.
func (s *LoansService) CreateLoan(ctx context.Context, mobileNumber string) error {
	_, err := s.repo.FindByMobileNumber(ctx, mobileNumber)
	switch {
	case err == nil:
		return apperr.AlreadyExists("Loan already registered with given mobileNumber " + mobileNumber)
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("find loan: %w", err)
	}

	loan := &model.Loan{
		MobileNumber:      mobileNumber,
		LoanNumber:        s.loanNumber(),
		LoanType:          homeLoan,
		TotalLoan:         newLoanLimit,
		AmountPaid:        0,
		OutstandingAmount: newLoanLimit,
	}
	if err := s.repo.Create(ctx, loan); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return apperr.AlreadyExists("Loan already registered with given mobileNumber " + mobileNumber)
		}
		return fmt.Errorf("create loan: %w", err)
	}

	s.logger.Info("Loan created", zap.String("loan_number", loan.LoanNumber))
	return nil
}

func (s *LoansService) FetchLoan(ctx context.Context, mobileNumber string) (*model.Loan, error) {
	loan, err := s.repo.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, notFoundOr(err, "Loan", "mobileNumber", mobileNumber)
	}
	return loan, nil
}

// UpdateLoan ищет кредит по номеру и переписывает остальные поля.
// Остаток долга пересчитывается из суммы и погашенной части.
func (s *LoansService) UpdateLoan(ctx context.Context, dto model.Loan) (bool, error) {
	loan, err := s.repo.FindByLoanNumber(ctx, dto.LoanNumber)
	if err != nil {
		return false, notFoundOr(err, "Loan", "LoanNumber", dto.LoanNumber)
	}

	loan.MobileNumber = dto.MobileNumber
	loan.LoanType = dto.LoanType
	loan.TotalLoan = dto.TotalLoan
	loan.AmountPaid = dto.AmountPaid
	loan.OutstandingAmount = dto.TotalLoan - dto.AmountPaid
	if err := s.repo.Update(ctx, loan); err != nil {
		return false, fmt.Errorf("update loan: %w", err)
	}
	return true, nil
}

func (s *LoansService) DeleteLoan(ctx context.Context, mobileNumber string) (bool, error) {
	loan, err := s.repo.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return false, notFoundOr(err, "Loan", "mobileNumber", mobileNumber)
	}
	if err := s.repo.Delete(ctx, loan.LoanID); err != nil {
		return false, fmt.Errorf("delete loan: %w", err)
	}
	return true, nil
}

// CardsService — CRUD карт, ключ — номер телефона.
type CardsService struct {
	repo       CardRepository
	logger     *zap.Logger
	cardNumber func() string
}

func NewCardsService(repo CardRepository, logger *zap.Logger) *CardsService {
	return &CardsService{repo: repo, logger: logger, cardNumber: randomProductNumber}
}

// CreateCard выпускает клиенту кредитную карту со стандартным лимитом.
func (s *CardsService) CreateCard(ctx context.Context, mobileNumber string) error {
	_, err := s.repo.FindByMobileNumber(ctx, mobileNumber)
	switch {
	case err == nil:
		return apperr.AlreadyExists("Card already registered with given mobileNumber " + mobileNumber)
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("find card: %w", err)
	}

	card := &model.Card{
		MobileNumber:    mobileNumber,
		CardNumber:      s.cardNumber(),
		CardType:        creditCard,
		TotalLimit:      newCardLimit,
		AmountUsed:      0,
		AvailableAmount: newCardLimit,
	}
	if err := s.repo.Create(ctx, card); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return apperr.AlreadyExists("Card already registered with given mobileNumber " + mobileNumber)
		}
		return fmt.Errorf("create card: %w", err)
	}

	s.logger.Info("Card created", zap.String("card_number", card.CardNumber))
	return nil
}

func (s *CardsService) FetchCard(ctx context.Context, mobileNumber string) (*model.Card, error) {
	card, err := s.repo.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, notFoundOr(err, "Card", "mobileNumber", mobileNumber)
	}
	return card, nil
}

// UpdateCard ищет карту по номеру; доступный остаток пересчитывается.
func (s *CardsService) UpdateCard(ctx context.Context, dto model.Card) (bool, error) {
	card, err := s.repo.FindByCardNumber(ctx, dto.CardNumber)
	if err != nil {
		return false, notFoundOr(err, "Card", "CardNumber", dto.CardNumber)
	}

	card.MobileNumber = dto.MobileNumber
	card.CardType = dto.CardType
	card.TotalLimit = dto.TotalLimit
	card.AmountUsed = dto.AmountUsed
	card.AvailableAmount = dto.TotalLimit - dto.AmountUsed
	if err := s.repo.Update(ctx, card); err != nil {
		return false, fmt.Errorf("update card: %w", err)
	}
	return true, nil
}

func (s *CardsService) DeleteCard(ctx context.Context, mobileNumber string) (bool, error) {
	card, err := s.repo.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return false, notFoundOr(err, "Card", "mobileNumber", mobileNumber)
	}
	if err := s.repo.Delete(ctx, card.CardID); err != nil {
		return false, fmt.Errorf("delete card: %w", err)
	}
	return true, nil
}
