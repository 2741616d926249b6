package services

import (
	"errors"
	"strings"
	"time"

	"github.com/JhonFredyH/LuxeHotel/models"

	"gorm.io/gorm"
)

// GuestProfile carries the profile fields supplied with a booking. They are
// only used when the email is unknown; an existing guest is returned as-is
// and edited through the guest-update endpoint instead.
type GuestProfile struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	DocumentType   string
	DocumentNumber string
	DateOfBirth    *time.Time
	Address        string
	City           string
	Country        string
}

// ResolveGuest finds the guest with the given email or creates one from the
// profile. The unique index on guests.email is the race guard: when two
// bookings create the same guest concurrently, the loser of the insert
// retries as a lookup.
func ResolveGuest(tx *gorm.DB, profile GuestProfile) (*models.Guest, error) {
	email := strings.ToLower(strings.TrimSpace(profile.Email))

	var guest models.Guest
	err := tx.Where("email = ?", email).First(&guest).Error
	if err == nil {
		return &guest, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	guest = models.Guest{
		FirstName:      profile.FirstName,
		LastName:       profile.LastName,
		Email:          email,
		Phone:          profile.Phone,
		DocumentType:   profile.DocumentType,
		DocumentNumber: profile.DocumentNumber,
		DateOfBirth:    profile.DateOfBirth,
		Address:        profile.Address,
		City:           profile.City,
		Country:        profile.Country,
	}

	if err := tx.Create(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the insert race, the row exists now
			if lookupErr := tx.Where("email = ?", email).First(&guest).Error; lookupErr == nil {
				return &guest, nil
			}
		}
		return nil, err
	}

	return &guest, nil
}
