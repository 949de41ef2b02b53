package models

import "time"

// Session records a live login. Only the SHA-256 of the token's jti is
// stored; the signed token itself lives in the client's cookie.
type Session struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	TokenHash string    `gorm:"size:64;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}
