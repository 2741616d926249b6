package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation statuses. checked_out and cancelled are terminal.
const (
	ReservationStatusPending    = "pending"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked_in"
	ReservationStatusCheckedOut = "checked_out"
	ReservationStatusCancelled  = "cancelled"
)

// Reservation books one Room type for a Guest over a date range, optionally
// pinned to a specific RoomUnit. Money fields are computed once at creation
// and never recomputed on later edits.
type Reservation struct {
	gorm.Model
	GuestID         uint      `json:"guestID" gorm:"not null;index"`
	RoomID          uint      `json:"roomID" gorm:"not null;index"`
	RoomUnitID      *uint     `json:"roomUnitID" gorm:"index"`
	CheckInDate     time.Time `json:"checkInDate" gorm:"type:date;not null"`
	CheckOutDate    time.Time `json:"checkOutDate" gorm:"type:date;not null;check:chk_reservation_dates,check_out_date > check_in_date"`
	Adults          int       `json:"adults" gorm:"default:1"`
	Children        int       `json:"children" gorm:"default:0"`
	Status          string    `json:"status" gorm:"size:20;default:'pending';index"` // pending, confirmed, checked_in, checked_out, cancelled
	SpecialRequests string    `json:"specialRequests" gorm:"type:text"`
	Subtotal        float64   `json:"subtotal" gorm:"not null;default:0"`
	Taxes           float64   `json:"taxes" gorm:"not null;default:0"`
	ServiceFee      float64   `json:"serviceFee" gorm:"not null;default:0"`
	TotalAmount     float64   `json:"totalAmount" gorm:"not null;default:0"`
	CreatedByUserID *uint     `json:"createdByUserID"`

	Guest    *Guest    `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
	Room     *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	RoomUnit *RoomUnit `json:"roomUnit,omitempty" gorm:"foreignKey:RoomUnitID"`
	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:ReservationID"`
}

// Terminal reports whether the reservation can no longer change status.
func (r *Reservation) Terminal() bool {
	return r.Status == ReservationStatusCheckedOut || r.Status == ReservationStatusCancelled
}
