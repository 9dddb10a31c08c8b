package models

import "time"

type User struct {
	ID                uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email             string     `gorm:"uniqueIndex;size:254;not null" json:"email"`
	FullName          string     `gorm:"size:100" json:"full_name"`
	HashedPassword    string     `gorm:"not null" json:"-"`
	IsActive          bool       `json:"is_active"` // set explicitly on create; a default tag would swallow explicit false
	IsVerified        bool       `json:"is_verified"`
	VerificationToken *string    `json:"-"` // 6-digit code, nulled once consumed
	ResetToken        *string    `json:"-"`
	ResetTokenExpires *time.Time `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
}
