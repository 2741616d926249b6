package services

import (
	"testing"

	"github.com/JhonFredyH/LuxeHotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUnit(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 2, 100.00, true)

	unit, err := CreateUnit(db, room.ID, "101", "corner room")
	require.NoError(t, err)
	assert.Equal(t, models.UnitStatusAvailable, unit.Status)
	assert.Equal(t, "101", unit.UnitNumber)

	t.Run("duplicate number within the room", func(t *testing.T) {
		_, err := CreateUnit(db, room.ID, "101", "")
		assert.ErrorIs(t, err, ErrDuplicateUnit)
	})

	t.Run("same number on another room type is fine", func(t *testing.T) {
		other := models.Room{Slug: "deluxe-king", Name: "Deluxe King", PricePerNight: 80, MaxGuests: 2}
		require.NoError(t, db.Create(&other).Error)

		_, err := CreateUnit(db, other.ID, "101", "")
		assert.NoError(t, err)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := CreateUnit(db, 9999, "102", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateUnitStatus(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 2, 100.00, true)
	seedUnit(t, db, room.ID, "101")

	t.Run("invalid status value", func(t *testing.T) {
		_, err := UpdateUnitStatus(db, room.ID, "101", "vacant")
		require.Error(t, err)
		assert.NotNil(t, IsValidationError(err))
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := UpdateUnitStatus(db, room.ID, "999", models.UnitStatusMaintenance)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("maintenance does not stamp cleaned", func(t *testing.T) {
		_, err := UpdateUnitStatus(db, room.ID, "101", models.UnitStatusMaintenance)
		require.NoError(t, err)

		unit, err := FindUnit(db, room.ID, "101")
		require.NoError(t, err)
		assert.Equal(t, models.UnitStatusMaintenance, unit.Status)
		assert.Nil(t, unit.LastCleanedAt)
	})

	t.Run("available stamps cleaned", func(t *testing.T) {
		_, err := UpdateUnitStatus(db, room.ID, "101", models.UnitStatusAvailable)
		require.NoError(t, err)

		unit, err := FindUnit(db, room.ID, "101")
		require.NoError(t, err)
		assert.Equal(t, models.UnitStatusAvailable, unit.Status)
		assert.NotNil(t, unit.LastCleanedAt)
	})
}
