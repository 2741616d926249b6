package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment methods and statuses.
const (
	PaymentMethodCard   = "card"
	PaymentMethodWallet = "wallet"

	PaymentStatusPending    = "pending"
	PaymentStatusAuthorized = "authorized"
	PaymentStatusPaid       = "paid"
	PaymentStatusFailed     = "failed"
	PaymentStatusRefunded   = "refunded"
)

// Payment records a charge taken against a reservation. Amounts are stored
// as charged and are not reconciled against the reservation total here.
type Payment struct {
	gorm.Model
	ReservationID uint       `json:"reservationID" gorm:"not null;index"`
	Method        string     `json:"method" gorm:"size:20;not null"` // card, wallet
	Status        string     `json:"status" gorm:"size:20;default:'pending'"`
	Amount        float64    `json:"amount" gorm:"not null"`
	Currency      string     `json:"currency" gorm:"size:3;default:'USD'"`
	Provider      string     `json:"provider" gorm:"size:80"`
	ProviderTxnID string     `json:"providerTxnID" gorm:"size:120"`
	CardLast4     string     `json:"cardLast4" gorm:"size:4"`
	CardBrand     string     `json:"cardBrand" gorm:"size:30"`
	PaidAt        *time.Time `json:"paidAt"`
}
