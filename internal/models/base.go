package models

import "time"

// DateLayout is the ISO calendar-date format used for expense dates and
// join dates.
const DateLayout = "2006-01-02"

// Base contains common columns for all tables
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Today returns the current UTC date formatted with DateLayout.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}
