package models

import "gorm.io/gorm"

// User represents the user model in the database
type User struct {
	Base
	Username     string  `gorm:"uniqueIndex;not null" json:"username"`
	Email        *string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	JoinedDate   string  `gorm:"not null" json:"joined_date"`
}

// BeforeCreate defaults the join date to the creation day.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.JoinedDate == "" {
		u.JoinedDate = Today()
	}
	return nil
}

// EmailOrEmpty returns the email or "" when none is registered.
func (u *User) EmailOrEmpty() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}
