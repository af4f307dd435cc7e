package model

import "time"

// User is a studio account able to log in. Only administrators exist in practice.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:64;not null"`
	Username     string    `json:"username" gorm:"size:64"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"` // Never expose in JSON
	Phone        string    `json:"phone,omitempty" gorm:"size:16"`
	RoleID       uint      `json:"role_id" gorm:"not null;index"`
	Role         *Role     `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session is the authenticated caller of a request, built from a verified session token.
// It is passed explicitly to authorization checks.
type Session struct {
	UserID    uint
	Email     string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}
