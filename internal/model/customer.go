package model

// Customer — клиент банка, ключ для внешнего мира — номер телефона.
type Customer struct {
	CustomerID   int64  `json:"-" db:"customer_id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	MobileNumber string `json:"mobileNumber" db:"mobile_number"`
	Audit
}

// Account — счёт клиента. У каждого клиента ровно один счёт.
type Account struct {
	CustomerID    int64  `json:"-" db:"customer_id"`
	AccountNumber int64  `json:"accountNumber" db:"account_number"`
	AccountType   string `json:"accountType" db:"account_type"`
	BranchAddress string `json:"branchAddress" db:"branch_address"`
	Audit
}

// CustomerDto — тело запросов create/update и ответа fetch сервиса accounts.
type CustomerDto struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	MobileNumber string   `json:"mobileNumber"`
	Account      *Account `json:"account,omitempty"`
}
