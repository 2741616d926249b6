package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JhonFredyH/LuxeHotel/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateReservationInput is shared by the guest self-service and front-desk
// booking paths; only the initial status differs between them.
type CreateReservationInput struct {
	RoomID          uint
	CheckInDate     time.Time
	CheckOutDate    time.Time
	Adults          int
	Children        int
	SpecialRequests string
	UnitNumber      string // optional pin to a physical unit
	Guest           GuestProfile
	CreatedByUserID *uint
}

// BookingConfirmation is returned to the caller after a successful booking.
type BookingConfirmation struct {
	ReservationID   uint      `json:"reservationID"`
	ReferenceNumber string    `json:"referenceNumber"`
	GuestName       string    `json:"guestName"`
	RoomName        string    `json:"roomName"`
	CheckInDate     time.Time `json:"checkInDate"`
	CheckOutDate    time.Time `json:"checkOutDate"`
	Nights          int       `json:"nights"`
	Status          string    `json:"status"`
	Quote
}

// ReferenceNumber derives the human-readable booking reference from the
// reservation id.
func ReferenceNumber(reservationID uint) string {
	return fmt.Sprintf("LX-%08d", reservationID)
}

// CreateGuestReservation books a room through the public self-service flow.
// The reservation starts out pending until the front desk confirms it.
func CreateGuestReservation(db *gorm.DB, input CreateReservationInput) (*BookingConfirmation, error) {
	return createReservation(db, input, models.ReservationStatusPending)
}

// CreateFrontDeskReservation books a room on behalf of a guest at the front
// desk. The reservation is confirmed immediately.
func CreateFrontDeskReservation(db *gorm.DB, input CreateReservationInput) (*BookingConfirmation, error) {
	return createReservation(db, input, models.ReservationStatusConfirmed)
}

func createReservation(db *gorm.DB, input CreateReservationInput, initialStatus string) (*BookingConfirmation, error) {
	if !input.CheckOutDate.After(input.CheckInDate) {
		return nil, &ValidationError{Field: "check_out_date", Reason: "check-out date must be after check-in date"}
	}

	var confirmation *BookingConfirmation

	err := runInTransaction(db, func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, input.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if room.IsActive != nil && !*room.IsActive {
			return ErrRoomUnavailable
		}

		if input.Adults+input.Children > room.MaxGuests {
			return &ValidationError{
				Field:  "guests",
				Reason: fmt.Sprintf("this room has a maximum capacity of %d guests", room.MaxGuests),
			}
		}

		guest, err := ResolveGuest(tx, input.Guest)
		if err != nil {
			return err
		}

		nights := Nights(input.CheckInDate, input.CheckOutDate)
		quote, err := CalculateQuote(room.PricePerNight, nights)
		if err != nil {
			return err
		}

		var unitID *uint
		if input.UnitNumber != "" {
			unit, err := FindUnit(tx, room.ID, input.UnitNumber)
			if err != nil {
				return err
			}
			unitID = &unit.ID
		}

		reservation := models.Reservation{
			GuestID:         guest.ID,
			RoomID:          room.ID,
			RoomUnitID:      unitID,
			CheckInDate:     input.CheckInDate,
			CheckOutDate:    input.CheckOutDate,
			Adults:          input.Adults,
			Children:        input.Children,
			Status:          initialStatus,
			SpecialRequests: input.SpecialRequests,
			Subtotal:        quote.Subtotal,
			Taxes:           quote.Taxes,
			ServiceFee:      quote.ServiceFee,
			TotalAmount:     quote.TotalAmount,
			CreatedByUserID: input.CreatedByUserID,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		if err := syncUnitStatus(tx, unitID, models.UnitStatusOccupied); err != nil {
			return err
		}

		confirmation = &BookingConfirmation{
			ReservationID:   reservation.ID,
			ReferenceNumber: ReferenceNumber(reservation.ID),
			GuestName:       guest.FullName(),
			RoomName:        room.Name,
			CheckInDate:     reservation.CheckInDate,
			CheckOutDate:    reservation.CheckOutDate,
			Nights:          nights,
			Status:          reservation.Status,
			Quote:           quote,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return confirmation, nil
}

// CheckIn moves a pending or confirmed reservation to checked_in and marks
// the pinned unit occupied.
func CheckIn(db *gorm.DB, reservationID uint) (*models.Reservation, error) {
	return transition(db, reservationID, "check-in", func(status string) bool {
		return status == models.ReservationStatusPending || status == models.ReservationStatusConfirmed
	}, models.ReservationStatusCheckedIn, models.UnitStatusOccupied)
}

// CheckOut moves a checked_in reservation to checked_out and hands the pinned
// unit over to housekeeping.
func CheckOut(db *gorm.DB, reservationID uint) (*models.Reservation, error) {
	return transition(db, reservationID, "check-out", func(status string) bool {
		return status == models.ReservationStatusCheckedIn
	}, models.ReservationStatusCheckedOut, models.UnitStatusCleaning)
}

// Cancel cancels any reservation that has not already terminated and frees
// the pinned unit.
func Cancel(db *gorm.DB, reservationID uint) (*models.Reservation, error) {
	return transition(db, reservationID, "cancel", func(status string) bool {
		return status != models.ReservationStatusCheckedOut && status != models.ReservationStatusCancelled
	}, models.ReservationStatusCancelled, models.UnitStatusAvailable)
}

func transition(db *gorm.DB, reservationID uint, action string, allowed func(string) bool, newStatus, unitStatus string) (*models.Reservation, error) {
	var reservation models.Reservation

	err := runInTransaction(db, func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !allowed(reservation.Status) {
			return &InvalidTransitionError{Action: action, Current: reservation.Status}
		}

		reservation.Status = newStatus
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}

		return syncUnitStatus(tx, reservation.RoomUnitID, unitStatus)
	})
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

// ReservationPatch holds the editable non-status fields. Nil means "leave the
// field alone"; present values are applied as-is.
type ReservationPatch struct {
	CheckInDate     *time.Time `json:"checkInDate"`
	CheckOutDate    *time.Time `json:"checkOutDate"`
	SpecialRequests *string    `json:"specialRequests"`
}

// UpdateReservation edits dates and notes without touching status or money
// fields. The date invariant is re-checked against the merged result.
func UpdateReservation(db *gorm.DB, reservationID uint, patch ReservationPatch) (*models.Reservation, error) {
	var reservation models.Reservation

	err := runInTransaction(db, func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if reservation.Terminal() {
			return &InvalidTransitionError{Action: "update", Current: reservation.Status}
		}

		if patch.CheckInDate != nil {
			reservation.CheckInDate = *patch.CheckInDate
		}
		if patch.CheckOutDate != nil {
			reservation.CheckOutDate = *patch.CheckOutDate
		}
		if patch.SpecialRequests != nil {
			reservation.SpecialRequests = *patch.SpecialRequests
		}

		if !reservation.CheckOutDate.After(reservation.CheckInDate) {
			return &ValidationError{Field: "check_out_date", Reason: "check-out date must be after check-in date"}
		}

		return tx.Save(&reservation).Error
	})
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

// lockForUpdate takes a row lock so concurrent transitions on the same
// reservation serialize. SQLite (used in tests) has no FOR UPDATE; its writer
// lock already serializes transactions.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// runInTransaction wraps fn in a transaction, retrying once when the database
// aborts it for transient lock contention. Business-rule failures are never
// retried.
func runInTransaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := db.Transaction(fn)
	if err != nil && isTransient(err) {
		return db.Transaction(fn)
	}
	return err
}

func isTransient(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "could not obtain lock") ||
		strings.Contains(msg, "lock timeout")
}
