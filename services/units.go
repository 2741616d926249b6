package services

import (
	"errors"
	"time"

	"github.com/JhonFredyH/LuxeHotel/models"

	"gorm.io/gorm"
)

// FindUnit looks up a physical unit by room type and unit number.
func FindUnit(tx *gorm.DB, roomID uint, unitNumber string) (*models.RoomUnit, error) {
	var unit models.RoomUnit
	err := tx.Where("room_id = ? AND unit_number = ?", roomID, unitNumber).First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// CreateUnit registers a new physical unit for a room type. The composite
// unique index on (room_id, unit_number) rejects duplicates.
func CreateUnit(tx *gorm.DB, roomID uint, unitNumber, notes string) (*models.RoomUnit, error) {
	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	unit := models.RoomUnit{
		RoomID:     roomID,
		UnitNumber: unitNumber,
		Status:     models.UnitStatusAvailable,
		Notes:      notes,
	}
	if err := tx.Create(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUnit
		}
		return nil, err
	}
	return &unit, nil
}

// syncUnitStatus applies a reservation transition's side effect to the pinned
// unit. Reservations without a pinned unit skip the sync, so a nil id is a
// no-op rather than an error.
func syncUnitStatus(tx *gorm.DB, unitID *uint, status string) error {
	if unitID == nil {
		return nil
	}
	return tx.Model(&models.RoomUnit{}).Where("id = ?", *unitID).Update("status", status).Error
}

// UpdateUnitStatus is the front-desk override. Setting a unit back to
// available here means housekeeping is done, so the cleaned timestamp is
// stamped; reservation transitions never stamp it.
func UpdateUnitStatus(tx *gorm.DB, roomID uint, unitNumber, status string) (*models.RoomUnit, error) {
	if !models.ValidUnitStatus(status) {
		return nil, &ValidationError{Field: "status", Reason: "must be one of available, occupied, maintenance, cleaning"}
	}

	unit, err := FindUnit(tx, roomID, unitNumber)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": status}
	if status == models.UnitStatusAvailable {
		now := time.Now()
		updates["last_cleaned_at"] = &now
	}
	if err := tx.Model(unit).Updates(updates).Error; err != nil {
		return nil, err
	}
	return unit, nil
}
