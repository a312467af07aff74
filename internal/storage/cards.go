package storage

import (
	"context"

	"github.com/Totarae/EazyBank/internal/model"
	"go.uber.org/zap"
)

type cardRow struct {
	CardID          int64  `json:"card_id"`
	MobileNumber    string `json:"mobile_number"`
	CardNumber      string `json:"card_number"`
	CardType        string `json:"card_type"`
	TotalLimit      int64  `json:"total_limit"`
	AmountUsed      int64  `json:"amount_used"`
	AvailableAmount int64  `json:"available_amount"`
}

// CardStore — in-memory таблица карт
type CardStore struct {
	t *table[cardRow]
}

func NewCardStore(file string, logger *zap.Logger) *CardStore {
	return &CardStore{t: newTable[cardRow](file, logger)}
}

func (s *CardStore) Create(_ context.Context, c *model.Card) error {
	row, err := s.t.insert(cardRow(*c),
		func(r *cardRow, next int64) int64 {
			r.CardID = next
			return next
		},
		func(existing cardRow) bool {
			return existing.MobileNumber == c.MobileNumber || existing.CardNumber == c.CardNumber
		},
	)
	if err != nil {
		return err
	}
	c.CardID = row.CardID
	return nil
}

func (s *CardStore) FindByMobileNumber(_ context.Context, mobileNumber string) (*model.Card, error) {
	row, err := s.t.first(func(r cardRow) bool { return r.MobileNumber == mobileNumber })
	if err != nil {
		return nil, err
	}
	card := model.Card(row)
	return &card, nil
}

func (s *CardStore) FindByCardNumber(_ context.Context, cardNumber string) (*model.Card, error) {
	row, err := s.t.first(func(r cardRow) bool { return r.CardNumber == cardNumber })
	if err != nil {
		return nil, err
	}
	card := model.Card(row)
	return &card, nil
}

func (s *CardStore) Update(_ context.Context, c *model.Card) error {
	return s.t.update(c.CardID, cardRow(*c), func(existing cardRow) bool {
		return existing.MobileNumber == c.MobileNumber || existing.CardNumber == c.CardNumber
	})
}

func (s *CardStore) Delete(_ context.Context, cardID int64) error {
	return s.t.delete(cardID)
}
