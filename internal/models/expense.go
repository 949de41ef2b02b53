package models

import "github.com/shopspring/decimal"

// Expense represents a single spending record owned by a user.
type Expense struct {
	Base
	UserID   uint            `gorm:"not null;index" json:"-"`
	Title    string          `gorm:"not null" json:"title"`
	Amount   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Category string          `gorm:"not null" json:"category"`
	Date     string          `gorm:"not null" json:"date"`
}
