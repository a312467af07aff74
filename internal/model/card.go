package model

// Card — карта клиента в сервисе cards.
type Card struct {
	CardID          int64  `json:"-" db:"card_id"`
	MobileNumber    string `json:"mobileNumber" db:"mobile_number"`
	CardNumber      string `json:"cardNumber" db:"card_number"`
	CardType        string `json:"cardType" db:"card_type"`
	TotalLimit      int64  `json:"totalLimit" db:"total_limit"`
	AmountUsed      int64  `json:"amountUsed" db:"amount_used"`
	AvailableAmount int64  `json:"availableAmount" db:"available_amount"`
}
