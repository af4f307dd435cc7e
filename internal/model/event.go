package model

import (
	"time"

	"gorm.io/datatypes"
)

// Capacity bounds for an event.
const (
	MinEventCapacity = 1
	MaxEventCapacity = 50
)

// Event is a photo session customers can register for.
type Event struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:64;not null;index"`
	Description string         `json:"description" gorm:"type:text"`
	Location    string         `json:"location" gorm:"size:256"`
	Date        datatypes.Date `json:"date" gorm:"not null"`
	Time        datatypes.Time `json:"time"`
	Capacity    int            `json:"capacity" gorm:"not null"`
	Active      bool           `json:"active" gorm:"not null;index"`
	Customers   []Customer     `json:"-" gorm:"foreignKey:EventID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Customer is a registration for an event. Rows are never mutated.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:64"`
	Email     string    `json:"email" gorm:"size:64"`
	Phone     string    `json:"phone" gorm:"size:16"`
	Message   string    `json:"message" gorm:"type:text"`
	EventID   uint      `json:"event_id" gorm:"not null;index"`
	Event     *Event    `json:"-" gorm:"foreignKey:EventID"`
	CreatedAt time.Time `json:"created_at"`
}

// EventWithCount is an event together with its number of registered customers.
type EventWithCount struct {
	Event
	Registered int64 `gorm:"column:registered"`
}
