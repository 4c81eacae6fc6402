package models

import "time"

// User is a registered account. Username and email are unique at the storage layer.
type User struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"` // don’t expose hash
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
