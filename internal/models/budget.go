package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the single spending target of a user. The user ID is the
// primary key, so there is at most one row per user.
type Budget struct {
	UserID    uint            `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	UpdatedAt time.Time       `json:"updated_at"`
}
