package model

// CustomerDetails — сводный ответ /api/fetchCustomerDetails.
// Клиент и счёт есть всегда; Loans и Cards опциональны
// (nil, если соответствующий сервис не ответил успешно).
type CustomerDetails struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	MobileNumber string   `json:"mobileNumber"`
	Account      *Account `json:"account"`
	Loans        *Loan    `json:"loans,omitempty"`
	Cards        *Card    `json:"cards,omitempty"`
}
