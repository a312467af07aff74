package model

import "time"

// Audit — служебные поля, которые заполняет сервис при записи.
type Audit struct {
	CreatedAt time.Time  `json:"-" db:"created_at"`
	CreatedBy string     `json:"-" db:"created_by"`
	UpdatedAt *time.Time `json:"-" db:"updated_at"`
	UpdatedBy string     `json:"-" db:"updated_by"`
}
