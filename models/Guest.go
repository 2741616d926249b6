package models

import (
	"time"

	"gorm.io/gorm"
)

// Guest is the person a reservation belongs to. Guests are created lazily on
// their first booking, so a row here does not imply a registered account;
// Password is only set when the guest signs up through /guests/register.
type Guest struct {
	gorm.Model
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Email          string        `json:"email" gorm:"uniqueIndex;size:120;not null"`
	Phone          string        `json:"phone" gorm:"size:30"`
	DocumentType   string        `json:"documentType" gorm:"size:30"`
	DocumentNumber string        `json:"documentNumber" gorm:"size:60"`
	DateOfBirth    *time.Time    `json:"dateOfBirth" gorm:"type:date"`
	Address        string        `json:"address" gorm:"size:180"`
	City           string        `json:"city" gorm:"size:80"`
	Country        string        `json:"country" gorm:"size:80"`
	Notes          string        `json:"notes" gorm:"type:text"`
	Password       string        `json:"-"`
	Reservations   []Reservation `json:"reservations,omitempty" gorm:"foreignKey:GuestID"`
}

// FullName is used in booking confirmations and reservation listings.
func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
