package model

// Loan — кредит клиента в сервисе loans.
type Loan struct {
	LoanID            int64  `json:"-" db:"loan_id"`
	MobileNumber      string `json:"mobileNumber" db:"mobile_number"`
	LoanNumber        string `json:"loanNumber" db:"loan_number"`
	LoanType          string `json:"loanType" db:"loan_type"`
	TotalLoan         int64  `json:"totalLoan" db:"total_loan"`
	AmountPaid        int64  `json:"amountPaid" db:"amount_paid"`
	OutstandingAmount int64  `json:"outstandingAmount" db:"outstanding_amount"`
}
