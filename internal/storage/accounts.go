package storage

import (
	"context"
	"time"

	"github.com/Totarae/EazyBank/internal/model"
	"go.uber.org/zap"
)

// Строки журнала хранят все поля, включая скрытые из API
type auditRow struct {
	CreatedAt time.Time  `json:"created_at"`
	CreatedBy string     `json:"created_by"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	UpdatedBy string     `json:"updated_by,omitempty"`
}

func toAuditRow(a model.Audit) auditRow {
	return auditRow{CreatedAt: a.CreatedAt, CreatedBy: a.CreatedBy, UpdatedAt: a.UpdatedAt, UpdatedBy: a.UpdatedBy}
}

func (r auditRow) model() model.Audit {
	return model.Audit{CreatedAt: r.CreatedAt, CreatedBy: r.CreatedBy, UpdatedAt: r.UpdatedAt, UpdatedBy: r.UpdatedBy}
}

type customerRow struct {
	CustomerID   int64  `json:"customer_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	auditRow
}

func toCustomerRow(c *model.Customer) customerRow {
	return customerRow{
		CustomerID:   c.CustomerID,
		Name:         c.Name,
		Email:        c.Email,
		MobileNumber: c.MobileNumber,
		auditRow:     toAuditRow(c.Audit),
	}
}

func (r customerRow) model() *model.Customer {
	return &model.Customer{
		CustomerID:   r.CustomerID,
		Name:         r.Name,
		Email:        r.Email,
		MobileNumber: r.MobileNumber,
		Audit:        r.auditRow.model(),
	}
}

type accountRow struct {
	CustomerID    int64  `json:"customer_id"`
	AccountNumber int64  `json:"account_number"`
	AccountType   string `json:"account_type"`
	BranchAddress string `json:"branch_address"`
	auditRow
}

func toAccountRow(a *model.Account) accountRow {
	return accountRow{
		CustomerID:    a.CustomerID,
		AccountNumber: a.AccountNumber,
		AccountType:   a.AccountType,
		BranchAddress: a.BranchAddress,
		auditRow:      toAuditRow(a.Audit),
	}
}

func (r accountRow) model() *model.Account {
	return &model.Account{
		CustomerID:    r.CustomerID,
		AccountNumber: r.AccountNumber,
		AccountType:   r.AccountType,
		BranchAddress: r.BranchAddress,
		Audit:         r.auditRow.model(),
	}
}

// CustomerStore — in-memory таблица клиентов
type CustomerStore struct {
	t *table[customerRow]
}

func NewCustomerStore(file string, logger *zap.Logger) *CustomerStore {
	return &CustomerStore{t: newTable[customerRow](file, logger)}
}

// Create присваивает клиенту CustomerID. Номер телефона уникален.
func (s *CustomerStore) Create(_ context.Context, c *model.Customer) error {
	row, err := s.t.insert(toCustomerRow(c),
		func(r *customerRow, next int64) int64 {
			r.CustomerID = next
			return next
		},
		func(existing customerRow) bool { return existing.MobileNumber == c.MobileNumber },
	)
	if err != nil {
		return err
	}
	c.CustomerID = row.CustomerID
	return nil
}

func (s *CustomerStore) FindByMobileNumber(_ context.Context, mobileNumber string) (*model.Customer, error) {
	row, err := s.t.first(func(r customerRow) bool { return r.MobileNumber == mobileNumber })
	if err != nil {
		return nil, err
	}
	return row.model(), nil
}

func (s *CustomerStore) FindByID(_ context.Context, customerID int64) (*model.Customer, error) {
	row, err := s.t.get(customerID)
	if err != nil {
		return nil, err
	}
	return row.model(), nil
}

func (s *CustomerStore) Update(_ context.Context, c *model.Customer) error {
	return s.t.update(c.CustomerID, toCustomerRow(c),
		func(existing customerRow) bool { return existing.MobileNumber == c.MobileNumber })
}

func (s *CustomerStore) Delete(_ context.Context, customerID int64) error {
	return s.t.delete(customerID)
}

// AccountStore — таблица счетов, ключ — номер счёта
type AccountStore struct {
	t *table[accountRow]
}

func NewAccountStore(file string, logger *zap.Logger) *AccountStore {
	return &AccountStore{t: newTable[accountRow](file, logger)}
}

// Create сохраняет счёт. У клиента может быть только один счёт.
func (s *AccountStore) Create(_ context.Context, a *model.Account) error {
	_, err := s.t.insert(toAccountRow(a),
		func(r *accountRow, _ int64) int64 { return r.AccountNumber },
		func(existing accountRow) bool {
			return existing.AccountNumber == a.AccountNumber || existing.CustomerID == a.CustomerID
		},
	)
	return err
}

func (s *AccountStore) FindByCustomerID(_ context.Context, customerID int64) (*model.Account, error) {
	row, err := s.t.first(func(r accountRow) bool { return r.CustomerID == customerID })
	if err != nil {
		return nil, err
	}
	return row.model(), nil
}

func (s *AccountStore) FindByAccountNumber(_ context.Context, accountNumber int64) (*model.Account, error) {
	row, err := s.t.get(accountNumber)
	if err != nil {
		return nil, err
	}
	return row.model(), nil
}

func (s *AccountStore) Update(_ context.Context, a *model.Account) error {
	return s.t.update(a.AccountNumber, toAccountRow(a),
		func(existing accountRow) bool { return existing.CustomerID == a.CustomerID })
}

func (s *AccountStore) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	acc, err := s.FindByCustomerID(ctx, customerID)
	if err != nil {
		return err
	}
	return s.t.delete(acc.AccountNumber)
}
