package repositories

import (
	"context"

	"github.com/Totarae/EazyBank/internal/model"
)

// CustomerRepository хранит клиентов в PostgreSQL (таблица customer).
type CustomerRepository struct {
	DB Querier
}

func NewCustomerRepository(db Querier) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// Create сохраняет клиента и записывает сгенерированный customer_id.
func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `INSERT INTO customer (name, email, mobile_number, created_at, created_by)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING customer_id`

	err := r.DB.QueryRow(ctx, query, c.Name, c.Email, c.MobileNumber, c.CreatedAt, c.CreatedBy).Scan(&c.CustomerID)
	return mapErr("insert customer", err)
}

const customerColumns = `customer_id, name, email, mobile_number, created_at, created_by, updated_at, updated_by`

func (r *CustomerRepository) FindByMobileNumber(ctx context.Context, mobileNumber string) (*model.Customer, error) {
	return r.findOne(ctx, `SELECT `+customerColumns+` FROM customer WHERE mobile_number = $1`, mobileNumber)
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*model.Customer, error) {
	return r.findOne(ctx, `SELECT `+customerColumns+` FROM customer WHERE customer_id = $1`, customerID)
}

func (r *CustomerRepository) findOne(ctx context.Context, query string, arg any) (*model.Customer, error) {
	c := &model.Customer{}
	var updatedBy *string
	err := r.DB.QueryRow(ctx, query, arg).Scan(
		&c.CustomerID, &c.Name, &c.Email, &c.MobileNumber,
		&c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &updatedBy,
	)
	if err != nil {
		return nil, mapErr("select customer", err)
	}
	if updatedBy != nil {
		c.UpdatedBy = *updatedBy
	}
	return c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `UPDATE customer
              SET name = $2, email = $3, mobile_number = $4, updated_at = $5, updated_by = $6
              WHERE customer_id = $1`
	return execOne(ctx, r.DB, "update customer", query,
		c.CustomerID, c.Name, c.Email, c.MobileNumber, c.UpdatedAt, c.UpdatedBy)
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID int64) error {
	return execOne(ctx, r.DB, "delete customer", `DELETE FROM customer WHERE customer_id = $1`, customerID)
}

// AccountRepository хранит счета (таблица accounts, ключ account_number).
type AccountRepository struct {
	DB Querier
}

func NewAccountRepository(db Querier) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *model.Account) error {
	query := `INSERT INTO accounts (account_number, customer_id, account_type, branch_address, created_at, created_by)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.Exec(ctx, query, a.AccountNumber, a.CustomerID, a.AccountType, a.BranchAddress, a.CreatedAt, a.CreatedBy)
	return mapErr("insert account", err)
}

const accountColumns = `account_number, customer_id, account_type, branch_address, created_at, created_by, updated_at, updated_by`

func (r *AccountRepository) FindByCustomerID(ctx context.Context, customerID int64) (*model.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE customer_id = $1`, customerID)
}

func (r *AccountRepository) FindByAccountNumber(ctx context.Context, accountNumber int64) (*model.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_number = $1`, accountNumber)
}

func (r *AccountRepository) findOne(ctx context.Context, query string, arg any) (*model.Account, error) {
	a := &model.Account{}
	var updatedBy *string
	err := r.DB.QueryRow(ctx, query, arg).Scan(
		&a.AccountNumber, &a.CustomerID, &a.AccountType, &a.BranchAddress,
		&a.CreatedAt, &a.CreatedBy, &a.UpdatedAt, &updatedBy,
	)
	if err != nil {
		return nil, mapErr("select account", err)
	}
	if updatedBy != nil {
		a.UpdatedBy = *updatedBy
	}
	return a, nil
}

func (r *AccountRepository) Update(ctx context.Context, a *model.Account) error {
	query := `UPDATE accounts
              SET account_type = $2, branch_address = $3, updated_at = $4, updated_by = $5
              WHERE account_number = $1`
	return execOne(ctx, r.DB, "update account", query,
		a.AccountNumber, a.AccountType, a.BranchAddress, a.UpdatedAt, a.UpdatedBy)
}

func (r *AccountRepository) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	return execOne(ctx, r.DB, "delete account", `DELETE FROM accounts WHERE customer_id = $1`, customerID)
}
