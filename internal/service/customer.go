package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/Totarae/EazyBank/internal/apperr"
	"github.com/Totarae/EazyBank/internal/model"
	"github.com/Totarae/EazyBank/internal/storage"
	"go.uber.org/zap"
)

// CustomerService собирает сводные данные клиента: клиент и счёт из локального
// хранилища, кредит и карта из соседних сервисов.
type CustomerService struct {
	customers CustomerRepository
	accounts  AccountRepository
	loans     LoansFetcher
	cards     CardsFetcher
	logger    *zap.Logger
}

func NewCustomerService(customers CustomerRepository, accounts AccountRepository,
	loans LoansFetcher, cards CardsFetcher, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customers: customers,
		accounts:  accounts,
		loans:     loans,
		cards:     cards,
		logger:    logger,
	}
}

// FetchCustomerDetails возвращает клиента со счётом, кредитом и картой.
// Ошибкой запроса становятся только отсутствие клиента (NOT_FOUND) и отсутствие
// его счёта (INTERNAL_INCONSISTENCY). Сбой loans или cards лишь оставляет
// соответствующее поле пустым.
func (s *CustomerService) FetchCustomerDetails(ctx context.Context, correlationID, mobileNumber string) (*model.CustomerDetails, error) {
	customer, err := s.customers.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("Customer", "mobileNumber", mobileNumber)
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}

	account, err := s.accounts.FindByCustomerID(ctx, customer.CustomerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error("Customer has no account",
				zap.String("correlation_id", correlationID),
				zap.Int64("customer_id", customer.CustomerID))
			return nil, apperr.InternalInconsistency("Account", "customerId", strconv.FormatInt(customer.CustomerID, 10))
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	details := &model.CustomerDetails{
		Name:         customer.Name,
		Email:        customer.Email,
		MobileNumber: customer.MobileNumber,
		Account:      account,
	}

	// Горутины пишут в разные поля details, синхронизация нужна только на Wait
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		loan, ok, err := s.loans.FetchLoan(ctx, correlationID, mobileNumber)
		if err != nil {
			s.logger.Warn("Loans response dropped",
				zap.String("correlation_id", correlationID), zap.Error(err))
			return
		}
		if ok {
			details.Loans = loan
		}
	}()
	go func() {
		defer wg.Done()
		card, ok, err := s.cards.FetchCard(ctx, correlationID, mobileNumber)
		if err != nil {
			s.logger.Warn("Cards response dropped",
				zap.String("correlation_id", correlationID), zap.Error(err))
			return
		}
		if ok {
			details.Cards = card
		}
	}()
	wg.Wait()

	return details, nil
}
