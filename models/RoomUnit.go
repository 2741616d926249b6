package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomUnit statuses. A unit's status is the authoritative "is this physical
// room free right now" signal; it is mutated by reservation transitions or by
// a direct front-desk override.
const (
	UnitStatusAvailable   = "available"
	UnitStatusOccupied    = "occupied"
	UnitStatusMaintenance = "maintenance"
	UnitStatusCleaning    = "cleaning"
)

// ValidUnitStatus reports whether s is one of the known unit statuses.
func ValidUnitStatus(s string) bool {
	switch s {
	case UnitStatusAvailable, UnitStatusOccupied, UnitStatusMaintenance, UnitStatusCleaning:
		return true
	}
	return false
}

// RoomUnit is one physical, independently occupiable room of a Room type.
type RoomUnit struct {
	gorm.Model
	RoomID        uint       `json:"roomID" gorm:"not null;uniqueIndex:idx_room_unit_number"`
	UnitNumber    string     `json:"unitNumber" gorm:"size:10;not null;uniqueIndex:idx_room_unit_number"`
	Status        string     `json:"status" gorm:"size:20;default:'available';index"` // available, occupied, maintenance, cleaning
	Notes         string     `json:"notes" gorm:"type:text"`
	LastCleanedAt *time.Time `json:"lastCleanedAt"`
	Room          *Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}
