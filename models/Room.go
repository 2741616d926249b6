package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room is a bookable room type (a category like "Presidential Suite"), not a
// physical room. Physical rooms are RoomUnits.
type Room struct {
	gorm.Model
	Slug               string         `json:"slug" gorm:"uniqueIndex;size:120;not null"`
	Name               string         `json:"name" gorm:"size:120;not null"`
	Description        string         `json:"description" gorm:"type:text"`
	PricePerNight      float64        `json:"pricePerNight" gorm:"not null"`
	SizeM2             int            `json:"sizeM2"`
	ViewType           string         `json:"viewType" gorm:"size:50"` // ocean, city, garden, pool
	Floor              string         `json:"floor" gorm:"size:30"`
	MaxAdults          int            `json:"maxAdults" gorm:"default:1"`
	MaxChildren        int            `json:"maxChildren" gorm:"default:0"`
	MaxGuests          int            `json:"maxGuests" gorm:"default:1"`
	Quantity           int            `json:"quantity" gorm:"default:1"`
	Rating             float32        `json:"rating" gorm:"default:0"`
	TotalReviews       int            `json:"totalReviews" gorm:"default:0"`
	Images             datatypes.JSON `json:"images"` // array of image URLs
	CheckInTime        string         `json:"checkInTime" gorm:"size:10;default:'15:00'"`
	CheckOutTime       string         `json:"checkOutTime" gorm:"size:10;default:'11:00'"`
	CancellationPolicy string         `json:"cancellationPolicy" gorm:"type:text"`
	IsActive           *bool          `json:"isActive" gorm:"default:true"`
	Amenities          []Amenity      `json:"amenities,omitempty" gorm:"many2many:room_amenity_map"`
	Units              []RoomUnit     `json:"units,omitempty" gorm:"foreignKey:RoomID"`
}

type Amenity struct {
	gorm.Model
	Code  string `json:"code" gorm:"uniqueIndex;size:60;not null"`
	Label string `json:"label" gorm:"size:100;not null"`
	Rooms []Room `json:"-" gorm:"many2many:room_amenity_map"`
}

func (Amenity) TableName() string { return "room_amenities" }
