package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/Totarae/EazyBank/internal/apperr"
	"github.com/Totarae/EazyBank/internal/model"
	"github.com/Totarae/EazyBank/internal/storage"
	"go.uber.org/zap"
)

const (
	accountNumberAttempts = 5

	accountsAuditor = "ACCOUNTS_MS"
	savingsAccount  = "Savings"
	defaultBranch   = "123 Main Street, New York"
)

// AccountsService — CRUD клиентов и их счетов.
type AccountsService struct {
	customers CustomerRepository
	accounts  AccountRepository
	logger    *zap.Logger

	now           func() time.Time
	accountNumber func() int64
}

func NewAccountsService(customers CustomerRepository, accounts AccountRepository, logger *zap.Logger) *AccountsService {
	return &AccountsService{
		customers:     customers,
		accounts:      accounts,
		logger:        logger,
		now:           time.Now,
		accountNumber: randomAccountNumber,
	}
}

// 10 цифр, первая — 1
func randomAccountNumber() int64 {
	return 1_000_000_000 + rand.Int64N(900_000_000)
}

// CreateAccount заводит клиента и сберегательный счёт к нему.
func (s *AccountsService) CreateAccount(ctx context.Context, dto model.CustomerDto) error {
	_, err := s.customers.FindByMobileNumber(ctx, dto.MobileNumber)
	switch {
	case err == nil:
		return customerExists(dto.MobileNumber)
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("find customer: %w", err)
	}

	now := s.now()
	customer := &model.Customer{
		Name:         dto.Name,
		Email:        dto.Email,
		MobileNumber: dto.MobileNumber,
		Audit:        model.Audit{CreatedAt: now, CreatedBy: accountsAuditor},
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return customerExists(dto.MobileNumber)
		}
		return fmt.Errorf("create customer: %w", err)
	}

	account, err := s.createAccount(ctx, customer.CustomerID, now)
	if err != nil {
		// Клиент без счёта нарушает инвариант, поэтому откатываем вставку
		if delErr := s.customers.Delete(ctx, customer.CustomerID); delErr != nil {
			s.logger.Error("Failed to roll back customer",
				zap.Int64("customer_id", customer.CustomerID), zap.Error(delErr))
		}
		return fmt.Errorf("create account: %w", err)
	}

	s.logger.Info("Account created",
		zap.Int64("customer_id", customer.CustomerID),
		zap.Int64("account_number", account.AccountNumber))
	return nil
}

// createAccount заводит счёт со случайным номером; при совпадении номера
// с существующим пробует другой.
func (s *AccountsService) createAccount(ctx context.Context, customerID int64, now time.Time) (*model.Account, error) {
	var err error
	for attempt := 0; attempt < accountNumberAttempts; attempt++ {
		account := &model.Account{
			CustomerID:    customerID,
			AccountNumber: s.accountNumber(),
			AccountType:   savingsAccount,
			BranchAddress: defaultBranch,
			Audit:         model.Audit{CreatedAt: now, CreatedBy: accountsAuditor},
		}
		err = s.accounts.Create(ctx, account)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, storage.ErrAlreadyExists) {
			return nil, err
		}
		s.logger.Warn("Account number collision, retrying",
			zap.Int64("account_number", account.AccountNumber), zap.Int("attempt", attempt+1))
	}
	return nil, err
}

func customerExists(mobileNumber string) error {
	return apperr.AlreadyExists("Customer already registered with given mobileNumber " + mobileNumber)
}

// FetchAccount возвращает клиента вместе со счётом.
func (s *AccountsService) FetchAccount(ctx context.Context, mobileNumber string) (*model.CustomerDto, error) {
	customer, err := s.customers.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, notFoundOr(err, "Customer", "mobileNumber", mobileNumber)
	}

	account, err := s.accounts.FindByCustomerID(ctx, customer.CustomerID)
	if err != nil {
		return nil, notFoundOr(err, "Account", "customerId", strconv.FormatInt(customer.CustomerID, 10))
	}

	return &model.CustomerDto{
		Name:         customer.Name,
		Email:        customer.Email,
		MobileNumber: customer.MobileNumber,
		Account:      account,
	}, nil
}

// UpdateAccount обновляет счёт и клиента. Счёт ищется по номеру из тела запроса;
// без блока account обновлять нечего, и возвращается false.
func (s *AccountsService) UpdateAccount(ctx context.Context, dto model.CustomerDto) (bool, error) {
	if dto.Account == nil {
		return false, nil
	}

	account, err := s.accounts.FindByAccountNumber(ctx, dto.Account.AccountNumber)
	if err != nil {
		return false, notFoundOr(err, "Account", "AccountNumber", strconv.FormatInt(dto.Account.AccountNumber, 10))
	}

	customer, err := s.customers.FindByID(ctx, account.CustomerID)
	if err != nil {
		return false, notFoundOr(err, "Customer", "CustomerID", strconv.FormatInt(account.CustomerID, 10))
	}
	previous := *customer

	// Сначала клиент: его обновление может упасть на занятом номере телефона,
	// и тогда счёт остаётся нетронутым
	now := s.now()
	customer.Name = dto.Name
	customer.Email = dto.Email
	customer.MobileNumber = dto.MobileNumber
	customer.UpdatedAt = &now
	customer.UpdatedBy = accountsAuditor
	if err := s.customers.Update(ctx, customer); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return false, customerExists(dto.MobileNumber)
		}
		return false, fmt.Errorf("update customer: %w", err)
	}

	account.AccountType = dto.Account.AccountType
	account.BranchAddress = dto.Account.BranchAddress
	account.UpdatedAt = &now
	account.UpdatedBy = accountsAuditor
	if err := s.accounts.Update(ctx, account); err != nil {
		if restoreErr := s.customers.Update(ctx, &previous); restoreErr != nil {
			s.logger.Error("Failed to restore customer",
				zap.Int64("customer_id", previous.CustomerID), zap.Error(restoreErr))
		}
		return false, fmt.Errorf("update account: %w", err)
	}
	return true, nil
}

// DeleteAccount удаляет счёт и клиента.
func (s *AccountsService) DeleteAccount(ctx context.Context, mobileNumber string) (bool, error) {
	customer, err := s.customers.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return false, notFoundOr(err, "Customer", "mobileNumber", mobileNumber)
	}

	if err := s.accounts.DeleteByCustomerID(ctx, customer.CustomerID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("delete account: %w", err)
	}
	if err := s.customers.Delete(ctx, customer.CustomerID); err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return true, nil
}

// notFoundOr превращает storage.ErrNotFound в NOT_FOUND, остальное оборачивает
func notFoundOr(err error, resource, field, value string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NotFound(resource, field, value)
	}
	return fmt.Errorf("find %s: %w", resource, err)
}
